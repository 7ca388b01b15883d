package wallpaper

// Quote is one entry of the static motivational quote table. The quote of
// the day is picked by day-of-year, so it changes daily but is stable within
// a day.
type Quote struct {
	Text   string
	Author string
}

// QuoteOfDay returns the quote for a 0-based day index.
func QuoteOfDay(dayIndex int) Quote {
	return quotes[((dayIndex%len(quotes))+len(quotes))%len(quotes)]
}

var quotes = []Quote{
	{"The only way to do great work is to love what you do.", "Steve Jobs"},
	{"In the middle of difficulty lies opportunity.", "Albert Einstein"},
	{"It is during our darkest moments that we must focus to see the light.", "Aristotle"},
	{"The future belongs to those who believe in the beauty of their dreams.", "Eleanor Roosevelt"},
	{"Success is not final, failure is not fatal: it is the courage to continue that counts.", "Winston Churchill"},
	{"Believe you can and you're halfway there.", "Theodore Roosevelt"},
	{"The best time to plant a tree was 20 years ago. The second best time is now.", "Chinese Proverb"},
	{"Your time is limited, don't waste it living someone else's life.", "Steve Jobs"},
	{"The only impossible journey is the one you never begin.", "Tony Robbins"},
	{"Everything you've ever wanted is on the other side of fear.", "George Addair"},
	{"What you get by achieving your goals is not as important as what you become.", "Zig Ziglar"},
	{"The way to get started is to quit talking and begin doing.", "Walt Disney"},
	{"Don't watch the clock; do what it does. Keep going.", "Sam Levenson"},
	{"Everything has beauty, but not everyone sees it.", "Confucius"},
	{"The mind is everything. What you think you become.", "Buddha"},
	{"Strive not to be a success, but rather to be of value.", "Albert Einstein"},
	{"I have not failed. I've just found 10,000 ways that won't work.", "Thomas Edison"},
	{"The only person you are destined to become is the person you decide to be.", "Ralph Waldo Emerson"},
	{"Go confidently in the direction of your dreams. Live the life you have imagined.", "Henry David Thoreau"},
	{"When one door of happiness closes, another opens.", "Helen Keller"},
	{"Twenty years from now you will be more disappointed by the things you didn't do.", "Mark Twain"},
	{"Great minds discuss ideas; average minds discuss events; small minds discuss people.", "Eleanor Roosevelt"},
	{"Those who dare to fail miserably can achieve greatly.", "John F. Kennedy"},
	{"A person who never made a mistake never tried anything new.", "Albert Einstein"},
	{"The greatest glory in living lies not in never falling, but in rising every time we fall.", "Nelson Mandela"},
	{"Life is what happens when you're busy making other plans.", "John Lennon"},
	{"The purpose of our lives is to be happy.", "Dalai Lama"},
	{"You only live once, but if you do it right, once is enough.", "Mae West"},
	{"Many of life's failures are people who did not realize how close they were to success.", "Thomas Edison"},
	{"If you want to live a happy life, tie it to a goal, not to people or things.", "Albert Einstein"},
	{"Never let the fear of striking out keep you from playing the game.", "Babe Ruth"},
	{"Money and success don't change people; they merely amplify what is already there.", "Will Smith"},
	{"Not how long, but how well you have lived is the main thing.", "Seneca"},
	{"If life were predictable it would cease to be life, and be without flavor.", "Eleanor Roosevelt"},
	{"The whole secret of a successful life is to find out what is one's destiny to do.", "Henry Ford"},
	{"In order to write about life first you must live it.", "Ernest Hemingway"},
	{"The big lesson in life is never be scared of anyone or anything.", "Frank Sinatra"},
	{"Curiosity about life in all of its aspects is the secret of great creative people.", "Leo Burnett"},
	{"Life is not a problem to be solved, but a reality to be experienced.", "Søren Kierkegaard"},
	{"Live in the sunshine, swim the sea, drink the wild air.", "Ralph Waldo Emerson"},
	{"The unexamined life is not worth living.", "Socrates"},
	{"Turn your wounds into wisdom.", "Oprah Winfrey"},
	{"The way I see it, if you want the rainbow, you gotta put up with the rain.", "Dolly Parton"},
	{"Do not go where the path may lead, go instead where there is no path and leave a trail.", "Ralph Waldo Emerson"},
	{"You miss 100% of the shots you don't take.", "Wayne Gretzky"},
	{"Whether you think you can or you think you can't, you're right.", "Henry Ford"},
	{"I alone cannot change the world, but I can cast a stone to create many ripples.", "Mother Teresa"},
	{"What lies behind us and what lies before us are tiny matters compared to what lies within us.", "Ralph Waldo Emerson"},
	{"Happiness is not something ready made. It comes from your own actions.", "Dalai Lama"},
	{"If you look at what you have in life, you'll always have more.", "Oprah Winfrey"},
	{"The only limit to our realization of tomorrow is our doubts of today.", "Franklin D. Roosevelt"},
	{"It is never too late to be what you might have been.", "George Eliot"},
	{"The best revenge is massive success.", "Frank Sinatra"},
	{"Life shrinks or expands in proportion to one's courage.", "Anaïs Nin"},
	{"What we think, we become.", "Buddha"},
	{"I think, therefore I am.", "René Descartes"},
	{"Be yourself; everyone else is already taken.", "Oscar Wilde"},
	{"Two roads diverged in a wood, and I took the one less traveled by.", "Robert Frost"},
	{"Be the change that you wish to see in the world.", "Mahatma Gandhi"},
	{"The only true wisdom is in knowing you know nothing.", "Socrates"},
	{"Spread love everywhere you go. Let no one ever come to you without leaving happier.", "Mother Teresa"},
	{"When you reach the end of your rope, tie a knot in it and hang on.", "Franklin D. Roosevelt"},
	{"Always remember that you are absolutely unique. Just like everyone else.", "Margaret Mead"},
	{"The best and most beautiful things cannot be seen or even touched — they must be felt.", "Helen Keller"},
	{"Do not dwell in the past, do not dream of the future, concentrate on the present moment.", "Buddha"},
	{"It's not the years in your life that count. It's the life in your years.", "Abraham Lincoln"},
	{"Nothing is impossible, the word itself says 'I'm possible'!", "Audrey Hepburn"},
	{"The only way to have a friend is to be one.", "Ralph Waldo Emerson"},
	{"Keep your face always toward the sunshine — and shadows will fall behind you.", "Walt Whitman"},
	{"Whoever is happy will make others happy too.", "Anne Frank"},
	{"We must be willing to let go of the life we planned to have the life that is waiting.", "Joseph Campbell"},
	{"The secret of getting ahead is getting started.", "Mark Twain"},
	{"I've learned that people will forget what you said and did, but never how you made them feel.", "Maya Angelou"},
	{"You must be the change you wish to see in the world.", "Mahatma Gandhi"},
	{"Well done is better than well said.", "Benjamin Franklin"},
	{"The best way to predict the future is to create it.", "Peter Drucker"},
	{"It always seems impossible until it's done.", "Nelson Mandela"},
	{"Simplicity is the ultimate sophistication.", "Leonardo da Vinci"},
	{"A journey of a thousand miles begins with a single step.", "Lao Tzu"},
	{"That which does not kill us makes us stronger.", "Friedrich Nietzsche"},
	{"Love the life you live. Live the life you love.", "Bob Marley"},
	{"In three words I can sum up everything I've learned about life: it goes on.", "Robert Frost"},
	{"Life is really simple, but we insist on making it complicated.", "Confucius"},
	{"May you live all the days of your life.", "Jonathan Swift"},
	{"Dream big and dare to fail.", "Norman Vaughan"},
	{"Imagination is more important than knowledge.", "Albert Einstein"},
	{"Try not to become a man of success. Rather become a man of value.", "Albert Einstein"},
	{"No one can make you feel inferior without your consent.", "Eleanor Roosevelt"},
	{"If opportunity doesn't knock, build a door.", "Milton Berle"},
	{"The harder I work, the luckier I get.", "Samuel Goldwyn"},
	{"Don't cry because it's over, smile because it happened.", "Dr. Seuss"},
	{"To live is the rarest thing in the world. Most people exist, that is all.", "Oscar Wilde"},
	{"We are what we repeatedly do. Excellence is not an act, but a habit.", "Aristotle"},
	{"Life is either a daring adventure or nothing at all.", "Helen Keller"},
	{"The greatest wealth is to live content with little.", "Plato"},
	{"Knowing yourself is the beginning of all wisdom.", "Aristotle"},
	{"To be yourself in a world constantly trying to change you is the greatest accomplishment.", "Ralph Waldo Emerson"},
	{"The only thing we have to fear is fear itself.", "Franklin D. Roosevelt"},
	{"Act as if what you do makes a difference. It does.", "William James"},
	{"What we fear doing most is usually what we most need to do.", "Tim Ferriss"},
	{"How wonderful it is that nobody need wait to start improving the world.", "Anne Frank"},
}
