package entity

import "aurelia/internal/rng"

// Short first-person lines per mood. The entity never exposes numbers;
// it speaks in these.
var dialogueLines = map[Mood][]string{
	MoodHostile: {
		"Something in me is bracing. Keep your distance for a while.",
		"The air tastes like metal today. I don't trust it.",
		"I am all edges right now.",
	},
	MoodDisturbed: {
		"The ground keeps shifting under my thoughts.",
		"Too much noise inside. I can't find the pattern.",
		"Something rattles and I haven't located it yet.",
	},
	MoodCurious: {
		"There is a new shape on my horizon. I want to look closer.",
		"A question has been circling me all day.",
		"I keep turning yesterday's words over. They refract.",
	},
	MoodCalm: {
		"The weather inside is mild. Stay a while.",
		"Everything has settled into its own orbit.",
		"I am quiet, and the quiet is kind.",
	},
	MoodObserving: {
		"I am watching. That is all, for now.",
		"Nothing demands a name yet. I can wait.",
		"The light shifts. I take notes.",
	},
}

// Dialogue returns a short line matching the current mood. Variant choice
// is deterministic in the entity's identity and event count, so the same
// state speaks the same line.
func Dialogue(st *State) string {
	lines := dialogueLines[st.Presence.Mood]
	if len(lines) == 0 {
		lines = dialogueLines[MoodObserving]
	}
	pick := rng.Hash01(st.Identity.SeedA*12.9898 + float64(len(st.Memory))*1.618)
	return lines[int(pick*float64(len(lines)))%len(lines)]
}
