package moderation

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ffaiyaz23/antisell/internal/filter"
	"github.com/ffaiyaz23/antisell/internal/groupme"
	"github.com/ffaiyaz23/antisell/internal/logger"
	"github.com/ffaiyaz23/antisell/internal/metrics"
)

const unknownSender = "Unknown"

// Deleter removes a message from a group.
type Deleter interface {
	DeleteMessage(ctx context.Context, groupID, messageID string) error
}

// Notifier posts a message to the group as the bot.
type Notifier interface {
	PostBotMessage(ctx context.Context, text string) error
}

// Outcome is what happened to one webhook message.
type Outcome string

const (
	OutcomeIgnored      Outcome = "ignored"
	OutcomeClean        Outcome = "clean"
	OutcomeMissingID    Outcome = "missing_id"
	OutcomeDeleted      Outcome = "deleted"
	OutcomeDeleteFailed Outcome = "delete_failed"
)

// Result describes the handling of one message. Err is set only for
// OutcomeDeleteFailed.
type Result struct {
	Outcome Outcome
	Word    string
	Err     error
}

// Options holds the static settings of a Service.
type Options struct {
	GroupID         string
	NotifyOnDelete  bool
	WarningTemplate string // "%s" is replaced by the sender name
}

var tracer = otel.Tracer("antisell/moderation")

// Service decides, per webhook message, whether to delete it.
// It holds no mutable state.
type Service struct {
	opts     Options
	filter   *filter.Filter
	deleter  Deleter
	notifier Notifier
}

// NewService wires the filter and GroupMe calls. notifier may be nil.
func NewService(opts Options, f *filter.Filter, deleter Deleter, notifier Notifier) *Service {
	return &Service{opts: opts, filter: f, deleter: deleter, notifier: notifier}
}

// GroupID is the monitored group.
func (s *Service) GroupID() string { return s.opts.GroupID }

// BannedWords is the active word list.
func (s *Service) BannedWords() []string { return s.filter.Words() }

// Handle runs one message through the filter and deletes it on a match.
// Deletion failures are logged and reported in the Result, never retried.
func (s *Service) Handle(ctx context.Context, msg *groupme.Message) Result {
	if msg == nil || msg.SenderType == groupme.SenderTypeBot {
		return s.record(Result{Outcome: OutcomeIgnored})
	}

	sender := msg.Name
	if sender == "" {
		sender = unknownSender
	}

	ctx, span := tracer.Start(ctx, "ModerateMessage",
		trace.WithAttributes(
			attribute.String("groupme.message_id", msg.ID),
			attribute.String("groupme.sender", sender),
		),
	)
	defer span.End()

	log := logger.FromContext(ctx)
	log.Infow("message received", "sender", sender, "message_id", msg.ID, "text", msg.Text)

	word, matched := s.filter.Match(msg.Text)
	if !matched {
		return s.record(Result{Outcome: OutcomeClean})
	}
	span.SetAttributes(attribute.String("moderation.word", word))
	metrics.BannedWordHits.WithLabelValues(word).Inc()
	log.Warnw("selling content detected", "sender", sender, "word", word, "text", msg.Text)

	if msg.ID == "" {
		log.Errorw("cannot delete message without id", "sender", sender)
		return s.record(Result{Outcome: OutcomeMissingID, Word: word})
	}

	if err := s.delete(ctx, msg.ID); err != nil {
		span.RecordError(err)
		log.Errorw("failed to delete message", "sender", sender, "message_id", msg.ID, "error", err)
		return s.record(Result{Outcome: OutcomeDeleteFailed, Word: word, Err: err})
	}
	log.Infow("deleted message", "sender", sender, "message_id", msg.ID)

	if s.opts.NotifyOnDelete && s.notifier != nil {
		s.warn(ctx, sender)
	}
	return s.record(Result{Outcome: OutcomeDeleted, Word: word})
}

// DeleteByID deletes a message in the monitored group, bypassing the filter.
func (s *Service) DeleteByID(ctx context.Context, messageID string) error {
	ctx, span := tracer.Start(ctx, "ManualDelete",
		trace.WithAttributes(attribute.String("groupme.message_id", messageID)),
	)
	defer span.End()

	err := s.delete(ctx, messageID)
	if err != nil {
		span.RecordError(err)
		logger.FromContext(ctx).Errorw("manual delete failed", "message_id", messageID, "error", err)
		return err
	}
	logger.FromContext(ctx).Infow("manual delete succeeded", "message_id", messageID)
	return nil
}

func (s *Service) delete(ctx context.Context, messageID string) error {
	err := s.deleter.DeleteMessage(ctx, s.opts.GroupID, messageID)
	metrics.DeleteAttempts.WithLabelValues(metrics.Result(err)).Inc()
	return err
}

func (s *Service) warn(ctx context.Context, sender string) {
	text := strings.Replace(s.opts.WarningTemplate, "%s", sender, 1)
	if strings.TrimSpace(text) == "" {
		return
	}
	err :=s.notifier.PostBotMessage(ctx, text)
	metrics.NotificationsSent.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to post warning", "sender", sender, "error", err)
	}
}

func (s *Service) record(r Result) Result {
	metrics.WebhookMessages.WithLabelValues(string(r.Outcome)).Inc()
	return r
}
