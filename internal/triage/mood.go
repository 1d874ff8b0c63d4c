package triage

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/moodmate-app/moodmate-backend/internal/llm"
	"github.com/moodmate-app/moodmate-backend/pkg/logging"
)

// MoodNeutral is returned when no mood can be determined.
const MoodNeutral = "neutral"

// moodKeywordRule pairs a mood label with its trigger substrings. The slice
// order is the priority order; the first list containing a match wins.
type moodKeywordRule struct {
	mood     string
	keywords []string
}

var moodKeywordRules = []moodKeywordRule{
	{"happy", []string{"happy", "good", "great", "awesome", "excited", "joy", "smile", "khush", "achha", "wonderful"}},
	{"sad", []string{"sad", "depressed", "unhappy", "cry", "tears", "upset", "udasi", "dukhi", "heartbroken", "lonely"}},
	{"angry", []string{"angry", "mad", "furious", "annoyed", "gussa", "irritated", "hate", "frustrated"}},
	{"anxious", []string{"anxious", "nervous", "worried", "stress", "tension", "chinta", "panic", "overwhelmed"}},
	{"tired", []string{"tired", "exhausted", "sleepy", "fatigue", "thaka", "neend", "burnout"}},
}

// MoodCategories is the closed label set a model classification may return.
var MoodCategories = []string{
	"happy", "sad", "angry", "anxious", "lonely", "nostalgic", "excited", "calm",
	"confused", "hopeful", "grateful", "frustrated", "motivated", "tired",
	"bored", "content", "worried", "proud", "guilty", "relaxed", "energetic", "peaceful",
}

var moodCategorySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(MoodCategories))
	for _, m := range MoodCategories {
		set[m] = struct{}{}
	}
	return set
}()

var moodEmojis = map[string]string{
	"happy": "😊", "sad": "😢", "angry": "😠", "anxious": "😰", "lonely": "👤",
	"nostalgic": "📸", "excited": "🎉", "calm": "😌", "confused": "😕", "hopeful": "🌟",
	"grateful": "🙏", "frustrated": "😤", "motivated": "💪", "tired": "😴", "bored": "😑",
	"content": "😊", "worried": "😟", "proud": "🦁", "guilty": "😔", "relaxed": "🧘",
	"energetic": "⚡", "peaceful": "☮",
}

var moodPhrases = map[string]string{
	"happy":      "Keep smiling, it suits you.",
	"sad":        "This will pass. Hold on to a little hope.",
	"angry":      "Take a deep breath. Every bit of anger teaches something.",
	"anxious":    "Learn to stay calm; things settle one step at a time.",
	"lonely":     "Even in solitude, practice being your own friend.",
	"nostalgic":  "Memories are treasures. Keep them alive with a smile.",
	"excited":    "Keep the enthusiasm up. Small wins become big ones.",
	"calm":       "Real rest is found in calm.",
	"confused":   "Answers arrive with time. Keep asking.",
	"hopeful":    "Hold on to hope. It changes direction.",
	"grateful":   "Small gratitudes make a big difference.",
	"frustrated": "Obstacles point to new paths.",
	"motivated":  "A small step today, a big milestone tomorrow.",
	"tired":      "Rest first. Starting again will be easier.",
	"bored":      "Learn something new. Curiosity is fun.",
	"content":    "Real happiness lives in contentment.",
	"worried":    "Take one small step toward a solution.",
	"proud":      "Be proud of small steps. They matter.",
	"guilty":     "Learn from mistakes and move forward.",
	"relaxed":    "Rest up and move ahead slowly.",
	"energetic":  "Keep the energy up. The world is yours!",
	"peaceful":   "Lose yourself in the calm. Everything is okay.",
}

// DefaultMoodPhrase is used when no phrase exists for a mood.
const DefaultMoodPhrase = "You're doing great. Keep going!"

// MoodEmoji returns the emoji for a mood, defaulting to a smile.
func MoodEmoji(mood string) string {
	if e, ok := moodEmojis[mood]; ok {
		return e
	}
	return "😊"
}

// MoodPhrase returns the short encouragement line for a mood.
func MoodPhrase(mood string) string {
	if p, ok := moodPhrases[mood]; ok {
		return p
	}
	return DefaultMoodPhrase
}

// MoodClassifier maps free text to a mood label through an ordered keyword
// cascade, with a single constrained model call as the final tier.
type MoodClassifier struct {
	client llm.Client
	logger *logging.Logger
}

// NewMoodClassifier creates a classifier. client may be nil, in which case
// only the keyword tiers run.
func NewMoodClassifier(client llm.Client, logger *logging.Logger) *MoodClassifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &MoodClassifier{client: client, logger: logger}
}

// Classify returns a mood label for the message, or "neutral". Model errors
// are swallowed; this never fails.
func (c *MoodClassifier) Classify(ctx context.Context, message string) string {
	ctx, span := bucketTracer.Start(ctx, "triage.mood")
	defer span.End()

	if strings.TrimSpace(message) == "" {
		return MoodNeutral
	}

	lower := strings.ToLower(message)
	for _, rule := range moodKeywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				span.SetAttributes(
					attribute.String("mood.label", rule.mood),
					attribute.String("mood.source", "keyword"),
				)
				return rule.mood
			}
		}
	}

	if c.client != nil {
		if mood, ok := c.classifyWithModel(ctx, message); ok {
			span.SetAttributes(
				attribute.String("mood.label", mood),
				attribute.String("mood.source", "model"),
			)
			return mood
		}
	}

	return MoodNeutral
}

func (c *MoodClassifier) classifyWithModel(ctx context.Context, message string) (string, bool) {
	prompt := "Classify this mood: " + message +
		". Return exactly one lowercase word from: " + strings.Join(MoodCategories, ", ") + ", or neutral."

	resp, err := c.client.Complete(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   10,
		Temperature: 0,
	})
	if err != nil {
		c.logger.Warn("mood classification model call failed", "error", err)
		return "", false
	}

	label := strings.ToLower(strings.TrimSpace(resp.Text))
	if _, ok := moodCategorySet[label]; ok {
		return label, true
	}
	return "", false
}
