package usecase

import (
	"math/rand"

	"github.com/quizforge/quizforge-be/internal/delivery/http/entity"
)

// Adapter session thresholds. Note the weak-topic cutoff (0.5) is deliberately
// looser than the performance model's lifetime cutoff (0.6): the session
// signal reacts faster and resets every quiz.
const (
	sessionWeakThreshold   = 0.5
	levelUpThreshold       = 0.8
	levelDownThreshold     = 0.4
	minAnswersForLevelStep = 3
	minAnswersForAdvanced  = 4
	advancedFocusAccuracy  = 0.7
	minTopicObservations   = 2
)

// AdaptProfile turns the persisted record plus this session's answers into the
// ephemeral difficulty and focus topic used to pick the next question. It
// never fails: any panic during analysis degrades to the safe default profile.
func AdaptProfile(record entity.PerformanceRecord, recent []entity.AnswerEvent, category string, rnd *rand.Rand) (profile entity.AdaptedProfile) {
	fallback := entity.AdaptedProfile{
		Level:      record.Level,
		FocusTopic: DefaultTopic(category),
		Trend:      entity.TrendStable,
	}
	defer func() {
		if r := recover(); r != nil {
			profile = fallback
		}
	}()

	if len(recent) == 0 {
		return fallback
	}

	correct := 0
	for _, a := range recent {
		if a.Correct {
			correct++
		}
	}
	sessionAccuracy := float64(correct) / float64(len(recent))

	type tally struct {
		correct int
		total   int
	}
	byTopic := make(map[string]*tally)
	recentTopics := make(map[string]bool)
	for _, a := range recent {
		topic := a.Topic
		if topic == "" {
			topic = DefaultTopic(category)
		}
		recentTopics[topic] = true
		t, ok := byTopic[topic]
		if !ok {
			t = &tally{}
			byTopic[topic] = t
		}
		t.total++
		if a.Correct {
			t.correct++
		}
	}

	var sessionWeak []string
	for topic, t := range byTopic {
		if t.total >= minTopicObservations &&
			float64(t.correct)/float64(t.total) < sessionWeakThreshold {
			sessionWeak = append(sessionWeak, topic)
		}
	}

	level := record.Level
	trend := entity.TrendStable
	if len(recent) >= minAnswersForLevelStep {
		switch {
		case sessionAccuracy >= levelUpThreshold:
			level = level.Up()
			trend = entity.TrendImproving
		case sessionAccuracy <= levelDownThreshold:
			level = level.Down()
			trend = entity.TrendStruggling
		}
	}

	tax := TaxonomyFor(category)
	focus := ""
	switch {
	case len(sessionWeak) > 0:
		focus = sessionWeak[rnd.Intn(len(sessionWeak))]
	case sessionAccuracy > advancedFocusAccuracy && len(recent) >= minAnswersForAdvanced && len(tax.AdvancedTopics) > 0:
		var unused []string
		for _, t := range tax.AdvancedTopics {
			if !recentTopics[t] {
				unused = append(unused, t)
			}
		}
		if len(unused) > 0 {
			focus = unused[rnd.Intn(len(unused))]
		} else {
			focus = tax.AdvancedTopics[rnd.Intn(len(tax.AdvancedTopics))]
		}
	case len(recent) < minAnswersForLevelStep:
		focus = tax.BasicTopics[rnd.Intn(len(tax.BasicTopics))]
	default:
		focus = tax.IntermediateTopics[rnd.Intn(len(tax.IntermediateTopics))]
	}
	if focus == "" {
		focus = tax.DefaultTopic
	}

	return entity.AdaptedProfile{
		Level:      level,
		FocusTopic: focus,
		Trend:      trend,
	}
}
