package clan

var prefixes = []string{
	"Ash", "Bramble", "Cinder", "Dove", "Fern", "Frost", "Holly", "Jay",
	"Leaf", "Lion", "Mouse", "Oak", "Pine", "Rain", "Rose", "Rush",
	"Sand", "Shade", "Sorrel", "Spotted", "Squirrel", "Storm", "Thorn", "Willow",
}

var suffixes = []string{
	"claw", "fur", "heart", "leaf", "pelt", "tail", "whisker", "stripe",
	"fall", "feather", "flight", "foot", "shine", "song", "storm", "wing",
}

var pelts = []string{
	"ginger tabby", "black", "white", "gray", "tortoiseshell", "calico",
	"brown tabby", "silver tabby", "cream", "smoke",
}
