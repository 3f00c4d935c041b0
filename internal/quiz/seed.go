package quiz

// questions is the quiz seed table in presentation order.
var questions = []Question{
	{
		ID:            QuestionTopValues,
		Text:          "Select your top 3 core values:",
		MultiSelect:   true,
		MaxSelections: 3,
		Options: []Option{
			{"integrity", "Integrity"},
			{"creativity", "Creativity"},
			{"family", "Family"},
			{"growth", "Growth"},
			{"freedom", "Freedom"},
			{"compassion", "Compassion"},
			{"achievement", "Achievement"},
			{"wisdom", "Wisdom"},
			{"connection", "Connection"},
			{"courage", "Courage"},
		},
	},
	{
		ID:   QuestionCulturalMode,
		Text: "Which cultural/spiritual lens would you like for your Oriki?",
		Options: []Option{
			{"yoruba_inspired", "Yoruba-Inspired"},
			{"secular", "Secular"},
			{"turkish", "Turkish"},
			{"biblical", "Biblical"},
		},
	},
	{
		ID:   QuestionPronouns,
		Text: "In your praise poetry, you will be celebrated as:",
		Options: []Option{
			{"he_him", "He/Him"},
			{"she_her", "She/Her"},
			{"they_them", "They/Them"},
			{"name_only", "Name Only (we'll ask for your name next)"},
		},
	},
	{
		ID:   QuestionStrength,
		Text: "What is your greatest strength?",
		Options: []Option{
			{"leadership", "Leadership"},
			{"empathy", "Empathy"},
			{"resilience", "Resilience"},
			{"creativity", "Creativity"},
			{"analytical_thinking", "Analytical Thinking"},
			{"communication", "Communication"},
			{"patience", "Patience"},
			{"adaptability", "Adaptability"},
		},
	},
	{
		ID:   QuestionAspiration,
		Text: "What quality do you aspire to embody more?",
		Options: []Option{
			{"confidence", "Confidence"},
			{"peace", "Peace"},
			{"boldness", "Boldness"},
			{"wisdom", "Wisdom"},
			{"joy", "Joy"},
			{"influence", "Influence"},
			{"authenticity", "Authenticity"},
			{"discipline", "Discipline"},
		},
	},
	{
		ID:   QuestionMetaphor,
		Text: "Which metaphor resonates most with you?",
		Options: []Option{
			{"mountain", "The Mountain"},
			{"river", "The River"},
			{"flame", "The Flame"},
			{"tree", "The Tree"},
			{"storm", "The Storm"},
			{"sun", "The Sun"},
			{"bridge", "The Bridge"},
			{"garden", "The Garden"},
		},
	},
	{
		ID:   QuestionEnergy,
		Text: "How would you describe your energy?",
		Options: []Option{
			{"charismatic", "Charismatic"},
			{"grounded", "Grounded/Natural"},
			{"visionary", "Visionary"},
			{"healer", "Healer"},
			{"warrior", "Warrior"},
			{"sage", "Sage"},
		},
	},
	{
		ID:   QuestionLifeFocus,
		Text: "What is your primary life focus right now?",
		Options: []Option{
			{"career", "Career"},
			{"parenting", "Parenting"},
			{"relationships", "Love/Relationships"},
			{"health", "Health"},
			{"spirituality", "Spirituality"},
			{"creative_expression", "Creative Expression"},
		},
	},
	{
		ID:   QuestionLetter,
		Text: "What words do you need spoken over your life right now?",
	},
}
