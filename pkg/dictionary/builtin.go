package dictionary

// Builtin returns a small embedded word list so the CLI and server can
// run without a dictionary file. Order matters: earlier words win ties.
func Builtin() []string {
	return []string{
		"the", "and", "for", "you", "that", "this", "with", "have",
		"not", "are", "but", "was", "they", "his", "her", "she",
		"can", "all", "will", "one", "about", "out", "what", "when",
		"there", "their", "would", "make", "like", "time", "just",
		"know", "people", "year", "your", "good", "some", "could",
		"them", "see", "other", "than", "then", "now", "look",
		"only", "come", "over", "think", "also", "back", "after",
		"use", "two", "how", "our", "work", "first", "well", "way",
		"even", "new", "want", "because", "any", "these", "give",
		"day", "most", "where", "much", "down", "long", "here",
	}
}
