package event_bus

// BirthdaysUpdated fires after any write to the birthday collection.
const BirthdaysUpdated EventType = "birthdays.updated"
