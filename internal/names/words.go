package names

var adjectives = []string{
	"able", "active", "adorable", "agile", "alert", "ancient", "arctic", "artistic",
	"awake", "bold", "brave", "breezy", "bright", "brisk", "bumpy", "busy",
	"calm", "careful", "cheerful", "chilly", "clever", "cloudy", "cozy", "crisp",
	"curious", "daring", "dizzy", "eager", "early", "electric", "elegant", "empty",
	"fancy", "fast", "fearless", "fierce", "fluffy", "foggy", "frosty", "funny",
	"gentle", "giant", "glad", "glossy", "golden", "graceful", "grumpy", "happy",
	"hasty", "hidden", "honest", "humble", "hungry", "icy", "jolly", "keen",
	"kind", "lazy", "lively", "lone", "loud", "lucky", "mellow", "mighty",
	"misty", "modest", "muddy", "narrow", "nimble", "noble", "odd", "patient",
	"plucky", "polite", "proud", "quick", "quiet", "rapid", "rocky", "rough",
	"rugged", "rusty", "sandy", "shiny", "shy", "silent", "sleepy", "slow",
	"smooth", "snowy", "sparkling", "speedy", "steady", "stormy", "sunny", "swift",
	"tame", "tidy", "tiny", "tough", "tricky", "vast", "wandering", "warm",
	"wild", "windy", "wise", "witty", "young", "zany", "zealous", "zesty",
}

var colors = []string{
	"amber", "aqua", "azure", "beige", "black", "blue", "bronze", "brown",
	"coral", "cyan", "crimson", "emerald", "fuchsia", "gold", "gray", "green",
	"indigo", "ivory", "jade", "lavender", "lime", "magenta", "maroon", "navy",
	"olive", "orange", "pink", "plum", "purple", "red", "rose", "ruby",
	"salmon", "sapphire", "scarlet", "silver", "tan", "teal", "turquoise", "violet",
	"white", "yellow",
}

var animals = []string{
	"albatross", "alpaca", "ant", "badger", "bat", "bear", "beaver", "bison",
	"boar", "buffalo", "camel", "carp", "cat", "cheetah", "chicken", "cobra",
	"condor", "cougar", "coyote", "crab", "crane", "crow", "deer", "dingo",
	"dolphin", "donkey", "dove", "duck", "eagle", "eel", "elephant", "elk",
	"falcon", "ferret", "finch", "flamingo", "fox", "frog", "gazelle", "gecko",
	"giraffe", "goat", "goose", "gorilla", "grouse", "gull", "hamster", "hare",
	"hawk", "hedgehog", "heron", "hippo", "horse", "hyena", "ibex", "iguana",
	"jackal", "jaguar", "kangaroo", "kingfisher", "koala", "lemur", "leopard", "lion",
	"lizard", "llama", "lobster", "lynx", "magpie", "marmot", "meerkat", "mole",
	"moose", "mouse", "newt", "octopus", "otter", "owl", "ox", "panda",
	"panther", "parrot", "pelican", "penguin", "pike", "puffin", "quail", "rabbit",
	"raccoon", "raven", "reindeer", "salamander", "salmon", "seal", "shark", "sheep",
	"sloth", "snail", "sparrow", "squirrel", "stork", "swan", "tapir", "tiger",
	"toad", "trout", "turtle", "viper", "walrus", "weasel", "whale", "wolf",
	"wombat", "woodpecker", "yak", "zebra",
}
