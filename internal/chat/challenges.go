package chat

import "math/rand"

// dailyChallenges are small wellness actions suggested alongside each reply.
var dailyChallenges = []string{
	"Meditate for 5 minutes today.",
	"Call a friend.",
	"Read your favourite book.",
	"Take a 10 minute walk.",
	"Write down one good thing.",
	"Spend time with your family.",
	"Give yourself a compliment.",
	"Name three things you're grateful for.",
	"Learn a new song.",
	"Spend some time in nature.",
}

// PickChallenge returns a random daily challenge.
func PickChallenge() string {
	return dailyChallenges[rand.Intn(len(dailyChallenges))]
}
