package quotes

// all is the rotation used by ForDate. Order is significant.
var all = []Quote{
	{Text: "Live, love, laugh, leave a legacy.", Author: "Stephen Covey"},
	{Text: "The main thing is to keep the main thing the main thing.", Author: "Steven Covey"},
	{Text: "There is virtue in work and there is virtue in rest. Use both and overlook neither.", Author: "Alan Cohen"},
	{Text: "What gets measured gets managed.", Author: "Peter Drucker"},
	{Text: "Do or do not. There is no try.", Author: "Yoda"},
	{Text: "Amateurs sit and wait for inspiration. The rest of us just get up and go to work.", Author: "Stephen King"},
	{Text: "Have patience. All things are difficult before they become easy.", Author: "Saadi"},
	{Text: "You need to be doing fewer things for effect instead of doing more things with side effects.", Author: "Gary Keller"},
	{Text: "It is not because things are difficult that we dare not venture. It is because we dare not venture that they are difficult.", Author: "Seneca"},
	{Text: "Real artists ship.", Author: "Steve Jobs"},
	{Text: "Productivity is being able to do things that you were never able to do before.", Author: "Franz Kafka"},
	{Text: "Tell me and I’ll forget; show me and I may remember; involve me and I’ll understand.", Author: "Chinese Proverb"},
	{Text: "I call intuition cosmic fishing. You feel a nibble, then you’ve got to hook the fish.", Author: "Buckminster Fuller"},
	{Text: "Failures, repeated failures, are finger posts on the road to achievement. One fails forward toward success.", Author: "Charles F. Kettering"},
	{Text: "Actions prove who someone is, words just prove who they want to be.", Author: "Unknown"},
	{Text: "Everything you want is just outside your comfort zone.", Author: "Robert Allen"},
	{Text: "We can throw stones, complain about them, stumble on them, climb over them, or build with them.", Author: "William Arthur Ward"},
	{Text: "We are what we repeatedly do. Excellence, then, is not an act, but a habit.", Author: "Aristotle"},
	{Text: "My future starts when I wake up every morning. Every day I find something creative to do with my life.", Author: "Miles Davis"},
	{Text: "In life and business, purpose is the foundation of fulfilment.", Author: "UJ Ramdas"},
	{Text: "The world is full of magic things, patiently waiting for our senses to grow sharper.", Author: "W.B. Yeats"},
	{Text: "And the day came when the risk to remain tight in a bud was more painful than the risk it took to blossom.", Author: "Anaïs Nin"},
	{Text: "Every act of creation is first of all an act of destruction.", Author: "Picasso"},
	{Text: "Discovery consists of seeing what everybody has seen and thinking what nobody has thought.", Author: "Albert von Szent-Gyorgy"},
	{Text: "I am very cautious of people whose actions don't match their words.", Author: "Alex Elle"},
	{Text: "If I had asked people what they wanted, they would have said faster horses.", Author: "Henry Ford"},
	{Text: "If you don’t stick to your values when they’re being tested, they aren’t values. They’re hobbies.", Author: "Jon Stewart"},
	{Text: "Do what is right, not what is easy.", Author: "Unknown"},
	{Text: "You can tell whether a man is clever by his answers. You can tell whether a man is wise by his questions.", Author: "Naguib Mahfouz"},
	{Text: "Good ideas come from bad ideas, but only if there are enough of them.", Author: "Seth Godin"},
	{Text: "Make things as simple as possible, but not simpler.", Author: "Albert Einstein"},
	{Text: "Discipline is choosing between what you want now and what you want most.", Author: "Abraham Lincoln"},
	{Text: "The more original a discovery, the more obvious it seems afterward.", Author: "Arthur Koestler"},
	{Text: "The greatest danger for most of us is not that our aim is too high and we miss it, but that it is too low and we reach it.", Author: "Michelangelo"},
	{Text: "Talent develops in tranquility, character in the full current of human life.", Author: "Johann Wolfgang von Goethe"},
	{Text: "Conformity to the present is invisibility to the future.", Author: "Stefan Molyneux"},
	{Text: "Strive for progress, not perfection.", Author: "Unknown"},
	{Text: "Everyday do something that will inch you closer to a better tomorrow.", Author: "Doug Firebaugh"},
	{Text: "Do something instead of killing time. Because time is killing you.", Author: "Paulo Coelho"},
	{Text: "Why do anything unless it is going to be great?", Author: "Peter Block"},
	{Text: "Whenever you are asked if you can do a job, tell ‘em, ‘Certainly I can!’ Then get busy and find out how to do it.", Author: "Theodore Roosevelt"},
	{Text: "Fall in love with the process, and the results will come.", Author: "Eric Thomas"},
	{Text: "Your mind is for having ideas, not holding them.", Author: "David Allen"},
	{Text: "Be patient, sometimes you have to go through the worst to get the best.", Author: "Unknown"},
	{Text: "You can have results or excuses. Not both.", Author: "Arnold Schwarzenegger"},
	{Text: "The joy is in creating, not maintaining.", Author: "Vince Lombardi"},
	{Text: "Concentrate all your thoughts upon the work in hand. The sun’s rays do not burn until brought to a focus.", Author: "Alexander Graham Bell"},
	{Text: "My goal is no longer to get more done, but rather to have less to do.", Author: "Francine Jay"},
	{Text: "The temptation to quit will be greatest just before you are about to succeed.", Author: "Chinese Proverb"},
	{Text: "To be disciplined is to follow in a good way. To be self disciplined is to follow in a better way.", Author: "Corita Kent"},
	{Text: "Create with the heart, build with the mind.", Author: "Criss Jami"},
	{Text: "If you spend too much time thinking about a thing, you’ll never get it done.", Author: "Bruce Lee"},
	{Text: "Try not to become a person of success, but rather try to become a person of value.", Author: "Albert Einstein"},
	{Text: "The simple act of paying positive attention to people has a great deal to do with productivity.", Author: "Tom Peters"},
	{Text: "The true price of anything you do is the amount of time you exchange for it.", Author: "Henry David Thoreau"},
	{Text: "When you have to make a choice and don’t make it, that in itself is a choice.", Author: "William James"},
	{Text: "Nothing great was ever achieved without enthusiasm.", Author: "Ralph Waldo Emerson"},
	{Text: "Do the hard jobs first. The easy jobs will take care of themselves.", Author: "Dale Carnegie"},
	{Text: "When you do more than you're paid for, eventually, you'll be paid for more than you do.", Author: "Zig Ziglar"},
	{Text: "To think too long about doing a thing often becomes its undoing.", Author: "Eva Young"},
	{Text: "Motivation is what gets you started. Habit is what keeps you going.", Author: "Jim Rohn"},
	{Text: "You don’t have to see the whole staircase, just take the first step.", Author: "Martin Luther King Jr."},
	{Text: "A year from now you may wish you had started today.", Author: "Karen Lamb"},
	{Text: "It is not enough to be busy… The question is: what are we busy about?", Author: "Henry David Thoreau"},
	{Text: "It is well to be up before daybreak, for such habits contribute to health, wealth, and wisdom.", Author: "Aristotle"},
	{Text: "Doing things is not the same as getting things done.", Author: "Jared Silver"},
	{Text: "Effective performance is preceded by painstaking preparation.", Author: "Brian Tracy"},
	{Text: "My goal is to build a life I don't need vacation from.", Author: "Rob Hill Sr."},
	{Text: "If you love life, don’t waste time, for time is what life is made up of.", Author: "Bruce Lee"},
	{Text: "It’s not about having enough time, it’s about making enough time.", Author: "Rachael Bermingham"},
	{Text: "It is not the strongest of the species that survive, nor the most intelligent, but the one most responsive to change.", Author: "Charles Darwin"},
	{Text: "Action is the foundational key to all success.", Author: "Picasso"},
	{Text: "While one person hesitates because he feels inferior, the other is busy making mistakes and becoming superior.", Author: "Henry Link"},
	{Text: "The season of failure is the best time for sowing the seeds of success.", Author: "Yogananda Paramahamsa"},
	{Text: "Being rich is having money. Being wealthy is having time.", Author: "Margaret Bonnano"},
	{Text: "When we truly need to do is often what we most feel like avoiding.", Author: "David Allen"},
	{Text: "The secret of getting ahead is getting started.", Author: "Mark Twain"},
	{Text: "People say that motivation doesn't last. Well, neither does bathing. That's why we recommend it daily.", Author: "Zig Ziglar"},
	{Text: "Until we can manage time, we can manage nothing else.", Author: "Peter Drucker"},
	{Text: "Real integrity is doing the right thing, knowing that nobody’s going to know whether you did it or not.", Author: "Oprah Winfrey"},
	{Text: "The way to get started is to quit talking and begin doing.", Author: "Walt Disney"},
	{Text: "Sometimes, things may not go your way, but the effort should be there every single night.", Author: "Michael Jordan"},
	{Text: "Infinite striving to be the best is man’s duty; it is its own reward.", Author: "Mahatma Gandhi"},
	{Text: "Never give up on a dream just because of the time it will take to accomplish it. The time will pass anyway.", Author: "Earl Nightingale"},
	{Text: "He who is not courageous enough to take risks will accomplish nothing in life.", Author: "Muhammad Ali"},
	{Text: "Success is not final, failure is not fatal: it is the courage to continue that counts.", Author: "Winston Churchill"},
	{Text: "First you have to believe in yourself before others can believe in you.", Author: "Mimi Ikonn"},
	{Text: "Either write something worth reading or do something worth writing.", Author: "Benjamin Franklin"},
	{Text: "A mind that is stretched by new experiences can never go back to its old dimensions.", Author: "Oliver Wendell Holmes Sr."},
	{Text: "Nothing will work unless you do.", Author: "Maya Angelou"},
	{Text: "Some people dream of success... while others wake up and work hard at it.", Author: "Mark Zuckerberg"},
	{Text: "The wasted of all days is one without laughter.", Author: "E.E. Cummings"},
	{Text: "If you’re going through hell, keep going!", Author: "Winston Churchill"},
	{Text: "Take a simple idea and take it seriously.", Author: "Charlie Munger"},
	{Text: "Success is the progressive realization of worthwhile, predetermined goals.", Author: "Paul J. Meyer"},
	{Text: "Work hard, have fun and make history.", Author: "Jeff Bezos"},
	{Text: "Be a yardstick of quality. Some people aren’t used to an environment where excellence is expected.", Author: "Steve Jobs"},
	{Text: "Passion is energy. Feel the power that comes from focusing on what excites you.", Author: "Oprah Winfrey"},
	{Text: "Go confidently in the direction of your dreams and live the life you have imagined.", Author: "Henry David Thoreau"},
	{Text: "I hire people brighter than me and I get out of their way.", Author: "Lee Iacocca"},
	{Text: "Kindness is more powerful than compulsion.", Author: "Charles Schwab"},
	{Text: "Follow effective actions with quiet reflection. From the quiet reflection will come even more effective action.", Author: "Peter Drucker"},
	{Text: "Simplicity boils down to two steps: Identify the essential. Eliminate the rest.", Author: "Leo Babauta"},
	{Text: "A well spent day brings happy sleep.", Author: "Leonardo da Vinci"},
	{Text: "You are what you do, not what you say you'll do.", Author: "C.G. Jung"},
	{Text: "There is no substitute for guts.", Author: "Paul Bear Bryant"},
	{Text: "It’s not that I’m so smart, it’s just that I stay with problems longer.", Author: "Albert Einstein"},
	{Text: "Out of your vulnerabilities will come your strength.", Author: "Sigmund Freud"},
	{Text: "If you are seeking creative ideas, go out walking. Angels whisper to a man when he goes for a walk.", Author: "Raymond Inmon"},
	{Text: "Quality means doing it right when no one is looking.", Author: "Henry Ford"},
	{Text: "May you always do what you are afraid to do.", Author: "Ralph Waldo Emerson"},
	{Text: "The mighty oak was once a little nut that stood its ground.", Author: "Unknown"},
	{Text: "The best place to start is always at the beginning.", Author: "Bruce Freeman"},
	{Text: "How we spend our days is how we spend our lives.", Author: "Anne Dillard"},
	{Text: "If I have seen further, it is by standing on the shoulders of giants.", Author: "Isaac Newton"},
	{Text: "Work gives you meaning and purpose and life is empty without it.", Author: "Stephen Hawking"},
	{Text: "What you do today can improve all your tomorrows.", Author: "Ralph Marston"},
	{Text: "Learning never exhausts the mind.", Author: "Leonardo da Vinci"},
	{Text: "A thousand words leave not the same deep impression as does a single deed.", Author: "Henrik Ibsen"},
	{Text: "To think is easy. To act is difficult. To act as one thinks is the most difficult.", Author: "Johann Wolfgang von Goethe"},
	{Text: "Nature does not hurry, yet everything is accomplished.", Author: "Lao Tzu"},
	{Text: "In the world of behavioral change, simple works.", Author: "Tim Ferriss"},
	{Text: "Don’t be afraid to fail. Be afraid not to try.", Author: "Michael Jordan"},
	{Text: "The secret of your future is hidden in your daily routine.", Author: "Mike Murdock"},
	{Text: "The person who says it cannot be done should not interrupt the person who is doing it.", Author: "Chinese Proverb"},
	{Text: "The first hour of the morning is the rudder of the day.", Author: "Henry Ward Beecher"},
	{Text: "You can never cross the ocean until you have the courage to lose sight of the shore.", Author: "Christopher Columbus"},
	{Text: "You can’t use up creativity. The more you use, the more you have.", Author: "Maya Angelou"},
	{Text: "Silence is the sleep that nourishes wisdom.", Author: "Sir Francis Bacon"},
	{Text: "Big things have small beginnings.", Author: "Lao Tzu"},
	{Text: "Everything you want is on the other side of fear.", Author: "Jack Canfield"},
	{Text: "There are no traffic jams along the extra mile.", Author: "Roger Staubach"},
	{Text: "Don't worry about the haters. They are just angry because the truth you speak contradicts the lie they live.", Author: "Dr. Steve Maraboli"},
	{Text: "You don’t need more time in your day. You need to decide.", Author: "Seth Godin"},
	{Text: "The painter has the Universe in his mind and hands.", Author: "Leonardo da Vinci"},
	{Text: "Creativity is allowing yourself to make mistakes. Art is knowing which ones to keep.", Author: "Scott Adams"},
	{Text: "Creativity requires the courage to let go of certainties.", Author: "Erich Fromm"},
	{Text: "Be honest about who you are, flaw and all. You never know who you are inspiring by simply being you.", Author: "Mandy Hale"},
}
