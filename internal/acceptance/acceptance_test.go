package acceptance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"github.com/R-Jayasree/LegalEase/internal/core/domain"
	"github.com/R-Jayasree/LegalEase/internal/core/ports/driven/mocks"
	"github.com/R-Jayasree/LegalEase/internal/core/ports/driving"
	"github.com/R-Jayasree/LegalEase/internal/core/services"
	"github.com/R-Jayasree/LegalEase/internal/extractors"
	"github.com/R-Jayasree/LegalEase/internal/rules"
	"github.com/R-Jayasree/LegalEase/internal/runtime"
)

// responseDelay keeps the pending window observable without slowing the
// suite down
const responseDelay = 10 * time.Millisecond

// world carries the state of one scenario
type world struct {
	documents driving.DocumentService
	analysis  driving.AnalysisService
	chat      driving.ChatService

	sessionID string
	askErr    error
	secondErr error
	report    *domain.Analysis
}

func newWorld() (*world, error) {
	registry, err := runtime.NewServices(rules.LeaseIntentRules(), rules.LeaseClassificationRules())
	if err != nil {
		return nil, err
	}

	documents := services.NewDocumentService(mocks.NewMockActiveDocumentStore(), extractors.DefaultRegistry())
	annotator := services.NewAnnotator(registry, nil)
	aggregator := services.NewAggregator()
	analysis := services.NewAnalysisService(documents, rules.NewFixtureSource(), annotator, aggregator)
	matcher := services.NewIntentMatcher(registry)
	chat := services.NewConversationService(documents, matcher, services.ConversationConfig{
		ResponseDelay: responseDelay,
	})

	return &world{
		documents: documents,
		analysis:  analysis,
		chat:      chat,
	}, nil
}

func (w *world) theSampleLeaseIsActive(ctx context.Context) error {
	return w.documents.Ingest(ctx, rules.SampleLeaseName, rules.SampleLease)
}

func (w *world) anOpenConversation(ctx context.Context) error {
	info, err := w.chat.Open(ctx)
	if err != nil {
		return err
	}
	w.sessionID = info.ID
	return nil
}

func (w *world) iAsk(ctx context.Context, question string) error {
	_, w.askErr = w.chat.Submit(ctx, w.sessionID, question)
	if w.askErr != nil && !errors.Is(w.askErr, domain.ErrEmptyQuery) {
		return w.askErr
	}
	return nil
}

func (w *world) iImmediatelyAsk(ctx context.Context, question string) error {
	_, w.secondErr = w.chat.Submit(ctx, w.sessionID, question)
	return nil
}

func (w *world) theAssistantEventuallyReplies(ctx context.Context) error {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		info, err := w.chat.Get(ctx, w.sessionID)
		if err != nil {
			return err
		}
		if info.State == domain.SessionIdle {
			last := info.Messages[len(info.Messages)-1]
			if last.Type != domain.MessageAssistant {
				return fmt.Errorf("expected the last message to be from the assistant, got %s", last.Type)
			}
			return nil
		}
		time.Sleep(2 * time.Millisecond)
	}
	return errors.New("the assistant never replied")
}

func (w *world) theReplyMentions(ctx context.Context, text string) error {
	info, err := w.chat.Get(ctx, w.sessionID)
	if err != nil {
		return err
	}
	last := info.Messages[len(info.Messages)-1]
	if !strings.Contains(last.Content, text) {
		return fmt.Errorf("reply does not mention %q:\n%s", text, last.Content)
	}
	return nil
}

func (w *world) secondQuestionRejectedPending() error {
	if !errors.Is(w.secondErr, domain.ErrResponsePending) {
		return fmt.Errorf("expected ErrResponsePending, got %v", w.secondErr)
	}
	return nil
}

func (w *world) questionRejectedAsEmpty() error {
	if !errors.Is(w.askErr, domain.ErrEmptyQuery) {
		return fmt.Errorf("expected ErrEmptyQuery, got %v", w.askErr)
	}
	return nil
}

func (w *world) conversationHasMessages(ctx context.Context, count int) error {
	info, err := w.chat.Get(ctx, w.sessionID)
	if err != nil {
		return err
	}
	if len(info.Messages) != count {
		return fmt.Errorf("expected %d messages, got %d", count, len(info.Messages))
	}
	return nil
}

func (w *world) iCloseTheConversation(ctx context.Context) error {
	return w.chat.Close(ctx, w.sessionID)
}

func (w *world) theConversationIsGone(ctx context.Context) error {
	// Give any scheduled completion time to misfire
	time.Sleep(3 * responseDelay)

	_, err := w.chat.Get(ctx, w.sessionID)
	if !errors.Is(err, domain.ErrSessionNotFound) {
		return fmt.Errorf("expected ErrSessionNotFound, got %v", err)
	}
	return nil
}

func (w *world) iAnalyzeTheDocument(ctx context.Context) error {
	report, err := w.analysis.Analyze(ctx)
	if err != nil {
		return err
	}
	w.report = report
	return nil
}

func (w *world) analysisContainsClauses(count int) error {
	if len(w.report.Clauses) != count {
		return fmt.Errorf("expected %d clauses, got %d", count, len(w.report.Clauses))
	}
	return nil
}

func (w *world) majorRisksOrderedHighBeforeMedium() error {
	// Map the summary's risk list back to the clause severities
	severities := make(map[string]domain.RiskLevel)
	for _, clause := range w.report.Clauses {
		if clause.Category == domain.CategoryRisk {
			severities[clause.Simplified] = clause.RiskLevel
		}
	}

	last := domain.RiskHigh.Severity()
	for _, risk := range w.report.Summary.MajorRisks {
		level, ok := severities[risk]
		if !ok {
			return fmt.Errorf("risk %q has no matching clause", risk)
		}
		if level.Severity() > last {
			return errors.New("major risks are not ordered by descending severity")
		}
		last = level.Severity()
	}
	return nil
}

func (w *world) summaryListsRentAmount(amount string) error {
	if w.report.Summary.KeyTerms.RentAmount != amount {
		return fmt.Errorf("expected rent amount %q, got %q", amount, w.report.Summary.KeyTerms.RentAmount)
	}
	return nil
}

func InitializeScenario(sc *godog.ScenarioContext) {
	var w *world

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		var err error
		w, err = newWorld()
		return ctx, err
	})

	sc.Given(`^the sample lease is the active document$`, func(ctx context.Context) error {
		return w.theSampleLeaseIsActive(ctx)
	})
	sc.Given(`^an open conversation$`, func(ctx context.Context) error {
		return w.anOpenConversation(ctx)
	})
	sc.When(`^I ask "([^"]*)"$`, func(ctx context.Context, q string) error {
		return w.iAsk(ctx, q)
	})
	sc.When(`^I immediately ask "([^"]*)"$`, func(ctx context.Context, q string) error {
		return w.iImmediatelyAsk(ctx, q)
	})
	sc.Then(`^the assistant eventually replies$`, func(ctx context.Context) error {
		return w.theAssistantEventuallyReplies(ctx)
	})
	sc.Then(`^the reply mentions "([^"]*)"$`, func(ctx context.Context, text string) error {
		return w.theReplyMentions(ctx, text)
	})
	sc.Then(`^the second question is rejected because a response is pending$`, func() error {
		return w.secondQuestionRejectedPending()
	})
	sc.Then(`^the question is rejected as empty$`, func() error {
		return w.questionRejectedAsEmpty()
	})
	sc.Then(`^the conversation still has (\d+) message(?:s)?$`, func(ctx context.Context, count int) error {
		return w.conversationHasMessages(ctx, count)
	})
	sc.When(`^I close the conversation$`, func(ctx context.Context) error {
		return w.iCloseTheConversation(ctx)
	})
	sc.Then(`^the conversation is gone$`, func(ctx context.Context) error {
		return w.theConversationIsGone(ctx)
	})
	sc.When(`^I analyze the document$`, func(ctx context.Context) error {
		return w.iAnalyzeTheDocument(ctx)
	})
	sc.Then(`^the analysis contains (\d+) clauses$`, func(count int) error {
		return w.analysisContainsClauses(count)
	})
	sc.Then(`^the major risks are ordered high before medium$`, func() error {
		return w.majorRisksOrderedHighBeforeMedium()
	})
	sc.Then(`^the summary lists "([^"]*)" as the rent amount$`, func(amount string) error {
		return w.summaryListsRentAmount(amount)
	})
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
