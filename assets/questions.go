package assets

// Question is one quiz entry behind a clue.
type Question struct {
	Prompt  string
	Answers []string
	Correct int
}

// Questions is indexed by the question number stored in clue spawns.
var Questions = []Question{
	{"Which planet is known as the Red Planet?", []string{"Venus", "Mars", "Jupiter", "Mercury"}, 1},
	{"How many legs does a spider have?", []string{"Six", "Eight", "Ten", "Twelve"}, 1},
	{"What is the chemical symbol for gold?", []string{"Ag", "Gd", "Au", "Go"}, 2},
	{"Which ocean is the largest?", []string{"Atlantic", "Indian", "Arctic", "Pacific"}, 3},
	{"Who wrote 'A Study in Scarlet'?", []string{"Arthur Conan Doyle", "Agatha Christie", "Edgar Allan Poe", "Dashiell Hammett"}, 0},
	{"What is the boiling point of water at sea level in Celsius?", []string{"90", "100", "110", "120"}, 1},
	{"Which gas do plants absorb from the air?", []string{"Oxygen", "Nitrogen", "Carbon dioxide", "Helium"}, 2},
	{"How many sides does a hexagon have?", []string{"Five", "Six", "Seven", "Eight"}, 1},
	{"What is the capital of Australia?", []string{"Sydney", "Melbourne", "Canberra", "Perth"}, 2},
	{"Which instrument has 88 keys?", []string{"Piano", "Organ", "Accordion", "Harpsichord"}, 0},
	{"What is the largest mammal?", []string{"Elephant", "Blue whale", "Giraffe", "Orca"}, 1},
	{"In which year did the first person walk on the Moon?", []string{"1965", "1969", "1972", "1959"}, 1},
	{"What is the hardest natural substance?", []string{"Quartz", "Iron", "Diamond", "Granite"}, 2},
	{"Which language has the most native speakers?", []string{"English", "Spanish", "Hindi", "Mandarin Chinese"}, 3},
	{"What do bees make?", []string{"Silk", "Wax and honey", "Pollen", "Nectar"}, 1},
	{"How many minutes are in a day?", []string{"1440", "1240", "1400", "1660"}, 0},
}
