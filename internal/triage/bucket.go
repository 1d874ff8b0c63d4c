package triage

import (
	"context"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var bucketTracer = otel.Tracer("moodmate/triage")

// Bucket is the severity/tone category assigned to a message. It selects the
// canned template used whenever the reply generator fails or is unavailable.
type Bucket string

const (
	BucketCrisis     Bucket = "CRISIS"
	BucketSevereNeg  Bucket = "SEVERE_NEG"
	BucketMildNeg    Bucket = "MILD_NEG"
	BucketNeutralPos Bucket = "NEUTRAL_POS"
	BucketCasual     Bucket = "CASUAL"
)

type bucketRule struct {
	bucket  Bucket
	pattern *regexp.Regexp
}

// bucketRules is an ordered cascade; first match wins. NEUTRAL_POS is tested
// before MILD_NEG because the phrase sets overlap.
var bucketRules = []bucketRule{
	{BucketCrisis, regexp.MustCompile(`(?i)(kill myself|suicide|end my life|die|harm myself|i want to die|self harm|cutting)`)},
	{BucketSevereNeg, regexp.MustCompile(`(?i)(depression|hopeless|worthless|can't go on|self harm|cutting)`)},
	{BucketNeutralPos, regexp.MustCompile(`(?i)(grateful|happy|excited|proud|good day)`)},
	{BucketMildNeg, regexp.MustCompile(`(?i)(sad|down|stressed|anxious|not ok|lonely|tired|overwhelmed)`)},
}

// ClassifyBucket assigns a message to one of the five buckets.
func ClassifyBucket(ctx context.Context, message string) Bucket {
	_, span := bucketTracer.Start(ctx, "triage.bucket")
	defer span.End()

	bucket := BucketCasual
	for _, rule := range bucketRules {
		if rule.pattern.MatchString(message) {
			bucket = rule.bucket
			break
		}
	}

	span.SetAttributes(attribute.String("triage.bucket", string(bucket)))
	return bucket
}

// Template is a fixed canned response associated with a bucket.
type Template struct {
	Message     string   `json:"message"`
	Chips       []string `json:"chips"`
	SafetyCheck bool     `json:"safety_check"`
}

// templates hold the per-bucket canned responses; {name} is replaced with the
// user's display name.
var templates = map[Bucket]Template{
	BucketCrisis: {
		Message:     "**I'm really concerned for you. Are you safe right now?**\nIf you're in immediate danger, call your local emergency number or reach a trusted person nearby.\n— Options: [I'm safe] [I need help] [Grounding 60s]",
		Chips:       []string{"I'm safe", "I need help", "Grounding 60s"},
		SafetyCheck: true,
	},
	BucketSevereNeg: {
		Message:     "**Thanks for opening up, {name}.** That sounds really tough. **On a scale of 1–10, how intense is it right now?**\n— Options: [Breathing 60s] [Journal 2 lines] [Talk to a therapist]",
		Chips:       []string{"Breathing 60s", "Journal 2 lines", "Therapists"},
		SafetyCheck: false,
	},
	BucketMildNeg: {
		Message:     "**I hear you, {name}.** Want to try a quick coping step together or talk it out?\n— Options: [Grounding 60s] [Music for focus] [Journal]",
		Chips:       []string{"Grounding 60s", "Music", "Journal"},
		SafetyCheck: false,
	},
	BucketNeutralPos: {
		Message:     "**Love that, {name}!** Want to save this in your journal or keep chatting?\n— Options: [Save to journal] [New topic]",
		Chips:       []string{"Save to journal", "New topic"},
		SafetyCheck: false,
	},
	BucketCasual: {
		Message:     "**I'm here, {name}.** Tell me a bit more about what's on your mind.\n— Options: [Stress] [Relationships] [Studies]",
		Chips:       []string{"Stress", "Relationships", "Studies"},
		SafetyCheck: false,
	},
}

// TemplateFor returns the canned response for a bucket with the user's name
// substituted in.
func TemplateFor(bucket Bucket, userName string) Template {
	tpl, ok := templates[bucket]
	if !ok {
		tpl = templates[BucketCasual]
	}
	if userName == "" {
		userName = "friend"
	}
	tpl.Message = strings.ReplaceAll(tpl.Message, "{name}", userName)
	return tpl
}
