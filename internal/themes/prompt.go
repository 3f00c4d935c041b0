package themes

import (
	"fmt"
	"strings"

	"github.com/nursen/oriki/internal/quiz"
)

const systemPrompt = `You are a thoughtful analyst helping to extract meaningful themes from personal reflections. Be authentic and specific to this individual.`

func buildUserMessage(s quiz.Submission) string {
	var b strings.Builder

	b.WriteString("Quiz Responses:\n")
	fmt.Fprintf(&b, "- Top Values: %s\n", strings.Join(s.TopValues, ", "))
	fmt.Fprintf(&b, "- Greatest Strength: %s\n", s.GreatestStrength)
	fmt.Fprintf(&b, "- Aspirational Trait: %s\n", s.AspirationalTrait)
	fmt.Fprintf(&b, "- Metaphor/Archetype: %s\n", s.MetaphorArchetype)
	fmt.Fprintf(&b, "- Energy Style: %s\n", s.EnergyStyle)
	fmt.Fprintf(&b, "- Life Focus: %s\n", s.LifeFocus)
	fmt.Fprintf(&b, "- Cultural Mode: %s\n", s.CulturalMode)

	b.WriteString("\nFree-Write Letter:\n")
	b.WriteString(s.FreeWriteLetter)
	b.WriteString("\n")

	b.WriteString(`
Instructions:
Analyze the quiz responses and the letter to identify core themes, values, and emotional patterns. Extract:
1. VALUES: 3-7 core values. Look beyond the stated values to find implicit ones in the letter.
2. EMOTIONAL_TONE: the primary emotional quality in 1-3 words (hopeful, determined, reflective, resilient). Consider both the quiz and the letter.
3. METAPHORS: 2-5 nature-based or universal metaphors that resonate with their journey. Build on their chosen archetype but expand it.
4. IDENTITY_MARKERS: 3-5 descriptors of how they see themselves or aspire to be seen (e.g. "helper", "creator", "seeker").
5. ASPIRATIONS: 2-5 future goals, dreams, or aspirations from the letter and quiz responses.
6. STRENGTHS: 3-5 strengths and positive qualities, both stated and implied.
7. KEY_THEMES: 3-5 brief phrases that tie together their values, strengths, and story.

Extract themes from both explicit statements and implicit patterns.`)

	return b.String()
}
