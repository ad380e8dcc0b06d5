package cli

import "quiz-racer/internal/domain"

// builtinQuestions is the bundled bank: 15 questions per difficulty. It backs
// the server when no Postgres is configured and is what `seed` writes.
func builtinQuestions() []domain.Question {
	return []domain.Question{
		// easy
		{ID: "e1", Text: "What planet is known as the Red Planet?", Options: []string{"Venus", "Mars", "Jupiter", "Saturn"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy, Category: "Science"},
		{ID: "e2", Text: "How many continents are there on Earth?", Options: []string{"5", "6", "7", "8"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy, Category: "Geography"},
		{ID: "e3", Text: "What is the largest mammal in the world?", Options: []string{"Elephant", "Blue Whale", "Giraffe", "Hippopotamus"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy, Category: "Animals"},
		{ID: "e4", Text: "How many days are in a leap year?", Options: []string{"364", "365", "366", "367"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy, Category: "General"},
		{ID: "e5", Text: "What is the chemical symbol for water?", Options: []string{"O2", "CO2", "H2O", "NaCl"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy, Category: "Science"},
		{ID: "e6", Text: "Which country is famous for the Eiffel Tower?", Options: []string{"Italy", "Germany", "France", "Spain"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy, Category: "Geography"},
		{ID: "e7", Text: "What is 15 × 8?", Options: []string{"100", "120", "130", "140"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy, Category: "Math"},
		{ID: "e8", Text: "Which animal is known as the \"King of the Jungle\"?", Options: []string{"Tiger", "Elephant", "Lion", "Bear"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy, Category: "Animals"},
		{ID: "e9", Text: "What is the capital of Japan?", Options: []string{"Beijing", "Seoul", "Tokyo", "Bangkok"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy, Category: "Geography"},
		{ID: "e10", Text: "How many colors are in a rainbow?", Options: []string{"5", "6", "7", "8"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy, Category: "Science"},
		{ID: "e11", Text: "What is the largest ocean on Earth?", Options: []string{"Atlantic", "Indian", "Arctic", "Pacific"}, CorrectIndex: 3, Difficulty: domain.DifficultyEasy, Category: "Geography"},
		{ID: "e12", Text: "Who wrote \"Harry Potter\"?", Options: []string{"J.R.R. Tolkien", "J.K. Rowling", "Stephen King", "Roald Dahl"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy, Category: "Literature"},
		{ID: "e13", Text: "What gas do plants absorb from the atmosphere?", Options: []string{"Oxygen", "Nitrogen", "Carbon Dioxide", "Hydrogen"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy, Category: "Science"},
		{ID: "e14", Text: "How many legs does a spider have?", Options: []string{"6", "8", "10", "12"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy, Category: "Animals"},
		{ID: "e15", Text: "What is the freezing point of water in Celsius?", Options: []string{"-10°C", "0°C", "10°C", "32°C"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy, Category: "Science"},

		// medium
		{ID: "m1", Text: "What is the smallest country in the world by area?", Options: []string{"Monaco", "Vatican City", "San Marino", "Liechtenstein"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium, Category: "Geography"},
		{ID: "m2", Text: "Which element has the atomic number 79?", Options: []string{"Silver", "Platinum", "Gold", "Copper"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium, Category: "Science"},
		{ID: "m3", Text: "In which year did World War II end?", Options: []string{"1943", "1944", "1945", "1946"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium, Category: "History"},
		{ID: "m4", Text: "What is the capital of Australia?", Options: []string{"Sydney", "Melbourne", "Canberra", "Brisbane"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium, Category: "Geography"},
		{ID: "m5", Text: "Who painted the Mona Lisa?", Options: []string{"Michelangelo", "Leonardo da Vinci", "Raphael", "Botticelli"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium, Category: "Art"},
		{ID: "m6", Text: "What is the square root of 144?", Options: []string{"10", "11", "12", "13"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium, Category: "Math"},
		{ID: "m7", Text: "Which planet has the most moons?", Options: []string{"Jupiter", "Saturn", "Uranus", "Neptune"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium, Category: "Science"},
		{ID: "m8", Text: "What is the currency of Switzerland?", Options: []string{"Euro", "Swiss Franc", "Swiss Dollar", "Swiss Mark"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium, Category: "General"},
		{ID: "m9", Text: "Who discovered penicillin?", Options: []string{"Louis Pasteur", "Alexander Fleming", "Marie Curie", "Joseph Lister"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium, Category: "Science"},
		{ID: "m10", Text: "What is the longest river in the world?", Options: []string{"Amazon", "Nile", "Yangtze", "Mississippi"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium, Category: "Geography"},
		{ID: "m11", Text: "In which country would you find Machu Picchu?", Options: []string{"Mexico", "Peru", "Chile", "Bolivia"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium, Category: "Geography"},
		{ID: "m12", Text: "What is the main ingredient in hummus?", Options: []string{"Lentils", "Chickpeas", "Black Beans", "Kidney Beans"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium, Category: "Food"},
		{ID: "m13", Text: "Which Shakespeare play features the characters Romeo and Juliet?", Options: []string{"Hamlet", "Othello", "Romeo and Juliet", "Macbeth"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium, Category: "Literature"},
		{ID: "m14", Text: "How many bones are in the adult human body?", Options: []string{"186", "206", "226", "246"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium, Category: "Science"},
		{ID: "m15", Text: "What year was the first iPhone released?", Options: []string{"2005", "2006", "2007", "2008"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium, Category: "Technology"},

		// hard
		{ID: "h1", Text: "What is the Schrödinger equation primarily used to describe?", Options: []string{"Electromagnetic waves", "Quantum systems", "Thermodynamics", "Relativity"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard, Category: "Science"},
		{ID: "h2", Text: "Which treaty established the European Economic Community in 1957?", Options: []string{"Treaty of Versailles", "Treaty of Rome", "Treaty of Paris", "Treaty of Lisbon"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard, Category: "History"},
		{ID: "h3", Text: "What programming language was created by Guido van Rossum?", Options: []string{"Java", "C++", "Python", "Ruby"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard, Category: "Technology"},
		{ID: "h4", Text: "In economics, what does GDP stand for?", Options: []string{"General Domestic Product", "Gross Domestic Product", "Global Development Protocol", "General Development Plan"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard, Category: "Economics"},
		{ID: "h5", Text: "Who wrote \"The Art of War\"?", Options: []string{"Confucius", "Sun Tzu", "Lao Tzu", "Mencius"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard, Category: "History"},
		{ID: "h6", Text: "What is the chemical formula for sulfuric acid?", Options: []string{"HCl", "H2SO4", "HNO3", "H3PO4"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard, Category: "Science"},
		{ID: "h7", Text: "Which philosopher wrote \"Thus Spoke Zarathustra\"?", Options: []string{"Immanuel Kant", "Friedrich Nietzsche", "Karl Marx", "Jean-Paul Sartre"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard, Category: "Philosophy"},
		{ID: "h8", Text: "What is the derivative of e^x?", Options: []string{"xe^(x-1)", "e^x", "e^(x+1)", "ln(x)"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard, Category: "Math"},
		{ID: "h9", Text: "Which company developed the first commercially successful graphical user interface?", Options: []string{"Microsoft", "Apple", "Xerox", "IBM"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard, Category: "Technology"},
		{ID: "h10", Text: "What is the capital of Kazakhstan?", Options: []string{"Almaty", "Astana", "Bishkek", "Tashkent"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard, Category: "Geography"},
		{ID: "h11", Text: "Who discovered the structure of DNA?", Options: []string{"Watson and Crick", "Darwin and Wallace", "Mendel and Morgan", "Pasteur and Koch"}, CorrectIndex: 0, Difficulty: domain.DifficultyHard, Category: "Science"},
		{ID: "h12", Text: "What is the speed of light in a vacuum (approximately)?", Options: []string{"3×10⁶ m/s", "3×10⁷ m/s", "3×10⁸ m/s", "3×10⁹ m/s"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard, Category: "Science"},
		{ID: "h13", Text: "Which algorithm is commonly used for public-key cryptography?", Options: []string{"AES", "DES", "RSA", "SHA-256"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard, Category: "Technology"},
		{ID: "h14", Text: "What is the Pythagorean theorem used for?", Options: []string{"Calculating circle area", "Finding right triangle sides", "Solving cubic equations", "Computing logarithms"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard, Category: "Math"},
		{ID: "h15", Text: "In which year did the Berlin Wall fall?", Options: []string{"1987", "1988", "1989", "1990"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard, Category: "History"},
	}
}
