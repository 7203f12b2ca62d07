package seed

// PosterURLs are the public poster images assigned to generated titles.
var PosterURLs = []string{
	"https://media-cache.cinematerial.com/p/500x/ptdwzafa/back-in-action-movie-poster.jpg",
	"https://media-cache.cinematerial.com/p/500x/dmu6uk8v/avatar-the-last-airbender-movie-poster.jpg",
	"https://media-cache.cinematerial.com/p/500x/l94wgadr/f1-the-movie-movie-poster.jpg",
	"https://media-cache.cinematerial.com/p/500x/gbf4hlzz/karate-kid-legends-movie-poster.jpg",
	"https://media-cache.cinematerial.com/p/500x/oqagdh2u/the-beekeeper-movie-poster.jpg",
}

var actorFirstNames = []string{
	"John", "Jane", "Michael", "Sarah", "David", "Emily",
	"Robert", "Jessica", "William", "Amanda", "James", "Ashley",
	"Christopher", "Samantha", "Daniel", "Nicole", "Matthew", "Stephanie",
	"Anthony", "Rachel", "Mark", "Lauren", "Donald", "Megan",
	"Steven", "Amber", "Paul", "Brittany", "Andrew", "Danielle",
	"Joshua", "Melissa", "Kenneth", "Heather", "Kevin", "Elizabeth",
	"Brian", "Michelle", "George", "Kimberly", "Edward", "Amy",
	"Ronald", "Angela", "Timothy", "Rebecca", "Jason", "Laura",
	"Jeffrey", "Sharon", "Ryan", "Cynthia", "Jacob", "Kathleen",
	"Gary", "Helen", "Nicholas", "Deborah", "Eric", "Lisa",
	"Jonathan", "Nancy", "Stephen", "Betty", "Larry", "Sandra",
	"Justin", "Donna", "Scott", "Carol", "Brandon", "Ruth",
	"Benjamin", "Julie", "Samuel", "Joyce", "Frank", "Virginia",
	"Gregory", "Victoria", "Raymond", "Kelly", "Alexander", "Joan",
	"Patrick", "Evelyn", "Jack", "Dennis", "Judith", "Jerry",
	"Tyler", "Cheryl", "Aaron", "Andrea", "Jose", "Hannah",
	"Adam", "Jacqueline", "Nathan", "Martha", "Henry", "Gloria",
	"Douglas", "Teresa", "Peter", "Ann", "Zachary", "Sara",
	"Walter", "Madison", "Kyle", "Frances", "Harold", "Kathryn",
	"Carl", "Janet", "Arthur", "Doris", "Roger", "Joe",
	"Jean", "Keith", "Mildred", "Willie", "Katherine", "Ralph",
	"Lawrence", "Roy", "Rose", "Janice", "Bruce", "Judy",
	"Harry", "Christina", "Fred", "Kathy", "Wayne", "Theresa",
	"Billy", "Beverly", "Steve", "Denise", "Louis", "Tammy",
	"Jeremy", "Irene", "Randy", "Lori", "Howard", "Eugene",
	"Marilyn", "Carlos", "Russell", "Lillian", "Bobby", "Victor",
	"Robin", "Martin", "Peggy",
}

var actorLastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia",
	"Miller", "Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez",
	"Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore",
	"Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
	"Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson",
	"Walker", "Young", "Allen", "King", "Wright", "Scott",
	"Torres", "Nguyen", "Hill", "Flores", "Green", "Adams",
	"Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell",
	"Carter", "Roberts", "Gomez", "Kim", "Chen", "Ward",
	"Turner", "Phillips", "Parker", "Evans", "Edwards", "Collins",
	"Stewart", "Morris", "Rogers", "Reed", "Cook", "Morgan",
	"Bell", "Murphy", "Bailey", "Richardson", "Cox", "Howard",
	"Peterson", "Gray", "James", "Watson", "Brooks", "Kelly",
	"Sanders", "Price", "Bennett", "Wood", "Barnes", "Ross",
	"Henderson", "Coleman", "Jenkins", "Perry", "Powell", "Long",
	"Patterson", "Hughes", "Washington", "Butler", "Simmons", "Foster",
	"Gonzales", "Bryant", "Alexander", "Russell", "Griffin", "Diaz",
	"Hayes",
}

var directorFirstNames = []string{
	"Christopher", "Steven", "James", "Quentin", "Martin", "David",
	"Peter", "Ridley", "Tim", "Guy", "Sam", "Wes",
	"Paul", "Darren", "Danny", "Joel", "Ethan", "Coen",
	"Robert", "Zemeckis", "Ron", "Howard", "George", "Lucas",
	"Francis", "Ford", "Coppola", "Stanley", "Kubrick", "Alfred",
	"Hitchcock", "Orson", "Welles", "Akira", "Kurosawa", "Federico",
	"Fellini", "Ingmar", "Bergman", "Jean-Luc", "Godard", "François",
	"Truffaut", "Luis", "Buñuel", "Yasujirō", "Ozu", "Kenji",
	"Mizoguchi", "Mikio", "Naruse", "Masaki", "Kobayashi", "Kon",
	"Ichikawa", "Shohei", "Imamura", "Nagisa", "Oshima", "Hiroshi",
	"Teshigahara", "Seijun", "Suzuki", "Yoshishige", "Yoshida", "Kiju",
	"Toshio", "Matsumoto", "Shinji", "Aoyama", "Takeshi", "Kitano",
	"Takashi", "Miike", "Sion", "Sono", "Hirokazu", "Kore-eda",
	"Naomi", "Kawase", "Kiyoshi", "Kaneshiro", "Tadanobu", "Asano",
	"Koji", "Yakusho", "Ken", "Watanabe", "Hiroyuki", "Sanada",
	"Rinko", "Kikuchi", "Yuko", "Takeuchi", "Miki", "Nakatani",
	"Kyoko", "Fukada", "Aoi", "Miyazaki", "Rie", "Miyazawa",
	"Yoshino", "Kimura", "Mitsuki", "Tanimura", "Yui", "Aragaki",
	"Haruka", "Ayase", "Masami", "Nagasawa", "Erika", "Toda",
	"Mirei", "Kiritani", "Nana", "Eikura", "Yuka", "Fujimoto",
	"Maki", "Horikita", "Keiko", "Kitagawa",
}

var directorLastNames = []string{
	"Nolan", "Spielberg", "Cameron", "Tarantino", "Scorsese", "Fincher",
	"Jackson", "Scott", "Burton", "Ritchie", "Mendes", "Anderson",
	"Thomas", "Aronofsky", "Boyle", "Coen", "Brothers", "Zemeckis",
	"Howard", "Lucas", "Coppola", "Kubrick", "Hitchcock", "Welles",
	"Kurosawa", "Fellini", "Bergman", "Godard", "Truffaut", "Buñuel",
	"Ozu", "Mizoguchi", "Naruse", "Kobayashi", "Ichikawa", "Imamura",
	"Oshima", "Teshigahara", "Suzuki", "Yoshida", "Matsumoto", "Aoyama",
	"Kitano", "Miike", "Sono", "Kore-eda", "Kawase", "Kaneshiro",
	"Asano", "Yakusho", "Watanabe", "Sanada", "Kikuchi", "Takeuchi",
	"Nakatani", "Fukada", "Miyazaki", "Miyazawa", "Kimura", "Tanimura",
	"Aragaki", "Ayase", "Nagasawa", "Toda", "Kiritani", "Eikura",
	"Fujimoto", "Horikita", "Kitagawa",
}

var movieTitles = []string{
	"The Crimson Horizon", "Whispers of the Void", "Eternal Midnight", "The Last Echo",
	"Shadows of Tomorrow", "Beyond the Veil", "The Silent Storm", "Rising Phoenix",
	"The Forgotten Path", "Echoes of Destiny", "The Golden Dawn", "Midnight Mirage",
	"The Broken Mirror", "Whispers in the Wind", "The Last Dance", "Silent Waters",
	"The Hidden Door", "Beyond Reality", "The Lost Treasure", "Midnight Express",
	"Eternal Flame", "The Last Breath", "Hidden Depths", "Beyond Time",
	"The Forgotten Kingdom", "Whispers of Fate", "The Golden Age", "Shadows of the Past",
	"The Broken Chain", "Echoes of Eternity", "The Last Hope", "Silent Echoes",
	"The Hidden Truth", "Beyond Dreams", "The Lost Horizon", "Midnight Magic",
	"The Silent Witness", "Eternal Love", "The Last Light", "Hidden Secrets",
	"The Forgotten Love", "Whispers of Hope", "The Golden Path", "Shadows of Light",
	"The Broken Heart", "Echoes of Love", "The Last Memory", "Silent Dreams",
	"The Hidden Light", "The Lost Paradise", "Midnight Stars", "The Silent Prayer",
	"Eternal Peace", "The Last Sunset", "Hidden Beauty", "Beyond the Moon",
	"The Forgotten Dream", "Whispers of Peace", "The Golden Dream", "Shadows of Hope",
	"The Broken Dream", "Echoes of Peace", "The Last Dream", "Silent Peace",
	"The Hidden Dream", "The Lost Dream", "Midnight Peace", "The Silent Dream",
	"Eternal Dream", "The Last Peace", "Hidden Dreams", "Beyond the Dream",
	"The Forgotten Peace", "Whispers of Dreams", "The Golden Peace", "Shadows of Dreams",
	"The Broken Peace", "Echoes of Dreams", "The Hidden Echo", "Beyond the Echo",
	"The Lost Echo", "Midnight Echo", "The Silent Echo", "Eternal Echo",
	"Hidden Echo", "Beyond Echo", "The Forgotten Echo", "Whispers of Echo",
	"The Golden Echo", "Shadows of Echo", "The Broken Echo", "Echoes of Echo",
	"The Last Shadow", "Silent Shadow", "The Hidden Shadow", "Beyond the Shadow",
	"The Lost Shadow", "Midnight Shadow", "The Silent Shadow", "Eternal Shadow",
	"Hidden Shadow", "Beyond Shadow", "The Forgotten Shadow", "Whispers of Shadow",
	"The Crimson Tide", "Whispers of the Night", "Eternal Darkness", "The Last Stand",
	"Shadows of Yesterday", "Beyond the Stars", "Rising Dawn", "Echoes of Tomorrow",
	"The Golden Hour", "Midnight Dreams", "Whispers in the Dark", "The Crimson Dawn",
	"Whispers of the Morning", "Eternal Light", "Shadows of the Day", "Beyond the Horizon",
	"The Silent Dawn", "Rising Sun", "The Forgotten Light", "Echoes of the Day",
	"The Golden Sun", "Morning Dreams", "The Broken Light", "Whispers in the Light",
	"Bright Waters", "Beyond Light", "The Lost Light", "Morning Express",
	"The Silent Light", "Bright Depths", "Whispers of Light", "The Golden Light",
	"Echoes of Light", "Silent Light", "Morning Light", "Bright Secrets",
	"Beyond the Light", "Morning Stars", "Bright Beauty", "Bright Dreams",
	"Bright Echo", "Bright Shadow",
}

var showTitles = []string{
	"Breaking Dawn", "The Walking Dead", "Game of Thrones", "Stranger Things",
	"The Crown", "The Mandalorian", "The Witcher", "Bridgerton",
	"The Queen's Gambit", "Money Heist", "Dark", "The Boys",
	"Ozark", "The Handmaid's Tale", "Westworld", "The Expanse",
	"The Good Place", "Brooklyn Nine-Nine", "The Office", "Parks and Recreation",
	"Friends", "Seinfeld", "The Simpsons", "Family Guy",
	"South Park", "Rick and Morty", "Archer", "Bob's Burgers",
	"Futurama", "American Dad", "King of the Hill", "Beavis and Butt-Head",
	"Daria", "King of Queens", "Everybody Loves Raymond", "Frasier",
	"Cheers", "Taxi", "M*A*S*H", "All in the Family",
	"The Mary Tyler Moore Show", "The Dick Van Dyke Show", "I Love Lucy", "The Honeymooners",
	"The Twilight Zone", "The Outer Limits", "Alfred Hitchcock Presents", "The Andy Griffith Show",
	"Gilligan's Island", "Bewitched", "I Dream of Jeannie", "The Addams Family",
	"The Munsters", "The Brady Bunch", "The Partridge Family", "Happy Days",
	"Laverne & Shirley", "Mork & Mindy", "Welcome Back, Kotter", "Barney Miller",
	"WKRP in Cincinnati", "Soap", "The Love Boat", "Fantasy Island",
	"Charlie's Angels", "The Six Million Dollar Man", "The Bionic Woman", "Wonder Woman",
	"The Incredible Hulk", "The Dukes of Hazzard", "Dallas", "Dynasty",
	"Knots Landing", "Falcon Crest", "The Crimson Horizon", "Whispers of the Void",
	"Eternal Midnight", "The Last Echo", "Shadows of Tomorrow", "Beyond the Veil",
	"The Silent Storm", "Rising Phoenix", "The Forgotten Path", "Echoes of Destiny",
	"The Golden Dawn", "Midnight Mirage", "The Broken Mirror", "Whispers in the Wind",
	"The Last Dance", "Silent Waters", "The Hidden Door", "Beyond Reality",
	"The Lost Treasure", "Midnight Express", "Eternal Flame", "The Last Breath",
	"Hidden Depths", "Beyond Time", "The Forgotten Kingdom", "Whispers of Fate",
	"The Golden Age", "Shadows of the Past", "The Broken Chain", "Echoes of Eternity",
	"The Last Hope", "Silent Echoes", "The Hidden Truth", "Beyond Dreams",
	"The Lost Horizon", "Midnight Magic", "The Silent Witness", "Eternal Love",
	"The Last Light", "Hidden Secrets", "The Forgotten Love", "Whispers of Hope",
	"The Golden Path", "Shadows of Light", "The Broken Heart", "Echoes of Love",
	"The Last Memory", "Silent Dreams", "The Hidden Light", "The Lost Paradise",
	"Midnight Stars", "The Silent Prayer", "Eternal Peace", "The Last Sunset",
	"Hidden Beauty", "Beyond the Moon", "The Forgotten Dream", "Whispers of Peace",
	"The Golden Dream", "Shadows of Hope", "The Broken Dream", "Echoes of Peace",
	"The Last Dream", "Silent Peace", "The Hidden Dream", "The Lost Dream",
	"Midnight Peace", "The Silent Dream", "Eternal Dream", "The Last Peace",
	"Hidden Dreams", "Beyond the Dream", "The Forgotten Peace", "Whispers of Dreams",
	"The Golden Peace", "Shadows of Dreams", "The Broken Peace", "Echoes of Dreams",
	"The Hidden Echo", "Beyond the Echo", "The Lost Echo", "Midnight Echo",
	"The Silent Echo", "Eternal Echo", "Hidden Echo", "Beyond Echo",
	"The Forgotten Echo", "Whispers of Echo", "The Golden Echo", "Shadows of Echo",
	"The Broken Echo", "Echoes of Echo", "The Last Shadow", "Silent Shadow",
	"The Hidden Shadow", "Beyond the Shadow", "The Lost Shadow", "Midnight Shadow",
	"The Silent Shadow", "Eternal Shadow", "Hidden Shadow", "Beyond Shadow",
	"The Forgotten Shadow", "Whispers of Shadow", "The Crimson Tide", "Whispers of the Night",
	"Eternal Darkness", "The Last Stand", "Shadows of Yesterday", "Beyond the Stars",
	"Rising Dawn", "Echoes of Tomorrow", "The Golden Hour", "Midnight Dreams",
	"Whispers in the Dark", "The Crimson Dawn", "Whispers of the Morning", "Eternal Light",
	"Shadows of the Day", "Beyond the Horizon", "The Silent Dawn", "Rising Sun",
	"The Forgotten Light", "Echoes of the Day", "The Golden Sun", "Morning Dreams",
	"The Broken Light", "Whispers in the Light", "Bright Waters", "Beyond Light",
	"The Lost Light", "Morning Express", "The Silent Light", "Bright Depths",
	"Whispers of Light", "The Golden Light", "Echoes of Light", "Silent Light",
	"Morning Light", "Bright Secrets", "Beyond the Light", "Morning Stars",
	"Bright Beauty", "Bright Dreams", "Bright Echo", "Bright Shadow",
}

var seasonTitles = []string{
	"The Beginning", "Rising Tides", "Dark Waters", "New Horizons",
	"Breaking Point", "Crossing Lines", "Hidden Truths", "Echoes of the Past",
	"The Reckoning", "Lost Souls", "Shadows and Light", "The Awakening",
	"Storm Warning", "Point of No Return", "The Gathering", "Fallen Angels",
	"Blood and Fire", "The Long Road", "Crossroads", "The End Times",
	"New Beginnings", "The Fall", "Winter's End", "Spring Awakening",
	"Summer Heat", "Autumn Winds", "The Deep", "Surface Tension",
	"Breaking Waves", "Calm Waters", "Storm Surge", "The Hunt",
	"The Chase", "The Escape", "The Pursuit", "The Capture",
	"The Trial", "The Verdict", "The Sentence", "The Execution",
	"The Aftermath", "The Reunion", "The Separation", "The Discovery",
	"The Revelation", "The Truth", "The Lie", "The Deception",
	"The Betrayal", "The Redemption", "The Rise", "The Peak",
	"The Valley", "The Mountain", "The Ocean", "The Desert",
	"The Forest", "The City", "The Village", "The Island",
	"The Continent", "The World", "The Universe", "The Galaxy",
	"The Cosmos", "The Beginning of Time", "The End of Time", "The Middle Ages",
	"The Modern Era", "The Future", "The Past", "The Present",
	"The Moment", "The Hour", "The Day", "The Night",
	"The Dawn", "The Dusk", "The Twilight", "The Midnight",
	"The Morning", "The Afternoon", "The Evening", "The Sunset",
	"The Sunrise", "The High Noon", "The Low Tide", "The Full Moon",
	"The New Moon", "The Eclipse", "The Solar Flare", "The Meteor Shower",
	"The Comet", "The Asteroid", "The Black Hole", "The White Dwarf",
	"The Red Giant", "The Blue Star", "The Yellow Sun", "The Green Planet",
	"The Purple Nebula", "The Orange Galaxy", "The Pink Universe", "The Brown Cosmos",
	"The Gray Void",
}

var episodeTitles = []string{
	"The First Step", "Crossing the Line", "Breaking the Rules", "Finding the Truth",
	"Hiding the Secret", "Running from the Past", "Chasing the Future", "Building the Bridge",
	"Burning the Bridge", "Crossing the River", "Climbing the Mountain", "Descending into Darkness",
	"Rising to the Light", "Falling from Grace", "Flying to Freedom", "Walking the Path",
	"Running the Race", "Swimming the Ocean", "Diving into the Deep", "Floating on the Surface",
	"Sinking to the Bottom", "Rising to the Top", "Falling to the Ground", "Climbing to the Sky",
	"Descending to Hell", "Ascending to Heaven", "Walking in the Shadows", "Running in the Light",
	"Hiding in the Dark", "Seeking the Truth", "Finding the Lie", "Telling the Story",
	"Hearing the News", "Seeing the Signs", "Reading the Signs", "Writing the Book",
	"Opening the Door", "Closing the Window", "Breaking the Lock", "Fixing the Chain",
	"Cutting the Rope", "Tying the Knot", "Untying the Bond", "Creating the Bond",
	"Destroying the Wall", "Building the Tower", "Climbing the Ladder", "Descending the Stairs",
	"Rising the Elevator", "Falling the Shaft", "Flying the Plane", "Driving the Car",
	"Riding the Horse", "Walking the Dog", "Running the Cat", "Swimming the Fish",
	"Flying the Bird", "Crawling the Snake", "Slithering the Worm", "Jumping the Frog",
	"Hopping the Rabbit", "Galloping the Horse", "Trotting the Pony", "Cantering the Mare",
	"Galloping the Stallion", "Walking the Mule", "Running the Donkey", "Flying the Eagle",
	"Soaring the Hawk", "Diving the Falcon", "Hunting the Wolf", "Chasing the Deer",
	"Tracking the Bear", "Following the Fox", "Catching the Rabbit", "Trapping the Mouse",
	"Freeing the Bird", "Caging the Lion", "Taming the Tiger", "Training the Dog",
	"Teaching the Cat", "Learning the Lesson", "Studying the Book", "Reading the Page",
	"Writing the Word", "Speaking the Truth", "Hearing the Lie", "Seeing the Light",
	"Blind to the Dark", "Deaf to the Noise", "Mute to the Sound", "Silent to the Voice",
	"Loud to the Whisper", "Quiet to the Shout", "Soft to the Hard", "Gentle to the Rough",
	"Kind to the Mean", "Nice to the Nasty", "Good to the Bad", "Right to the Wrong",
	"Correct to the Error", "True to the False", "Real to the Fake", "Genuine to the Phony",
	"Authentic to the Counterfeit", "Original to the Copy", "Unique to the Common", "Special to the Ordinary",
	"Extraordinary to the Normal", "Amazing to the Mundane",
}
