// Package notify sends best-effort notifications about verification run results.
package notify

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/url"
	"os"
	"strings"
	"time"

	ntfy "github.com/go-pkgz/notify"

	"github.com/umputun/flowcheck/pkg/status"
)

const defaultTimeout = 10 * time.Second

// Params holds configuration for creating a notification Service.
// carried as config.Values.Notify, no intermediate mapping needed.
type Params struct {
	Channels      []string
	OnError       bool
	OnComplete    bool
	TimeoutMs     int
	TelegramToken string
	TelegramChat  string
	SlackToken    string
	SlackChannel  string
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	SMTPStartTLS  bool
	EmailFrom     string
	EmailTo       []string
	WebhookURLs   []string
	CustomScript  string
}

// Result holds run outcome data for notifications.
type Result struct {
	Status     string `json:"status"` // status.OutcomePassed or status.OutcomeFailed
	Target     string `json:"target"`
	Browser    string `json:"browser,omitempty"`
	Branch     string `json:"branch,omitempty"`
	Commit     string `json:"commit,omitempty"`
	Duration   string `json:"duration"`
	Steps      int    `json:"steps"`
	FailedStep string `json:"failed_step,omitempty"`
	Screenshot string `json:"screenshot,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Service fans a Result out to the configured channels.
type Service struct {
	channels   []channel
	custom     *customChannel
	onError    bool
	onComplete bool
	timeout    time.Duration
	hostname   string
	log        logger
}

// channel pairs a go-pkgz notifier with its destination URI.
type channel struct {
	notifier   ntfy.Notifier
	dest       string
	htmlEscape bool // telegram uses HTML parse mode
}

type logger interface {
	Print(format string, args ...any)
}

// channelMakers build go-pkgz channels by name. telegram is handled separately because
// its constructor performs a live API call.
var channelMakers = map[string]func(Params) ([]channel, error){
	"email":   makeEmailChannel,
	"slack":   makeSlackChannel,
	"webhook": makeWebhookChannels,
}

// telegramChannelMaker is a variable so tests can avoid the live API check.
var telegramChannelMaker = makeTelegramChannel

// New creates a notification Service from the given Params.
// returns nil, nil if no channels are configured; Send is nil-safe.
// misconfigured channels are reported as errors, an unreachable telegram API only disables that channel.
func New(p Params, log logger) (*Service, error) {
	if len(p.Channels) == 0 {
		return nil, nil //nolint:nilnil // nil service means "notifications off"
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	svc := &Service{
		onError:    p.OnError,
		onComplete: p.OnComplete,
		timeout:    time.Duration(p.TimeoutMs) * time.Millisecond,
		hostname:   hostname,
		log:        log,
	}
	if svc.timeout <= 0 {
		svc.timeout = defaultTimeout
	}

	for _, raw := range p.Channels {
		name := strings.ToLower(strings.TrimSpace(raw))
		switch name {
		case "telegram":
			c, tgErr := svc.telegram(p)
			if tgErr != nil {
				return nil, tgErr
			}
			if c != nil {
				svc.channels = append(svc.channels, *c)
			}
		case "custom":
			if p.CustomScript == "" {
				return nil, errors.New("custom channel: notify_custom_script is required")
			}
			svc.custom = newCustomChannel(p.CustomScript)
		default:
			maker, ok := channelMakers[name]
			if !ok {
				return nil, fmt.Errorf("unknown notification channel: %q", raw)
			}
			chs, mkErr := maker(p)
			if mkErr != nil {
				return nil, fmt.Errorf("%s channel: %w", name, mkErr)
			}
			svc.channels = append(svc.channels, chs...)
		}
	}

	if len(svc.channels) == 0 && svc.custom == nil {
		log.Print("[WARN] all notification channels were disabled due to initialization errors")
	}
	return svc, nil
}

// telegram validates params and builds the telegram channel.
// returns nil channel without error when the API is unreachable, with the token redacted from the log.
func (s *Service) telegram(p Params) (*channel, error) {
	if p.TelegramToken == "" {
		return nil, errors.New("telegram channel: notify_telegram_token is required")
	}
	if p.TelegramChat == "" {
		return nil, errors.New("telegram channel: notify_telegram_chat is required")
	}
	c, err := telegramChannelMaker(p)
	if err != nil {
		msg := strings.ReplaceAll(err.Error(), p.TelegramToken, "[REDACTED]")
		s.log.Print("[WARN] telegram channel disabled: %s", msg)
		return nil, nil //nolint:nilnil // channel skipped, not an error
	}
	return &c, nil
}

// Send delivers the result to all channels, honoring the on_error/on_complete filters.
// nil-safe; failures are logged, never returned.
func (s *Service) Send(ctx context.Context, r Result) {
	if s == nil {
		return
	}
	if r.Status == status.OutcomePassed && !s.onComplete {
		return
	}
	if r.Status == status.OutcomeFailed && !s.onError {
		return
	}

	msg := s.formatMessage(r)
	sendCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	for _, ch := range s.channels {
		text := msg
		if ch.htmlEscape {
			text = html.EscapeString(msg)
		}
		if err := ch.notifier.Send(sendCtx, ch.dest, text); err != nil {
			s.log.Print("[WARN] notification failed for %s: %v", ch.notifier, err)
		}
	}

	if s.custom != nil {
		if err := s.custom.send(sendCtx, r); err != nil {
			s.log.Print("[WARN] custom notification failed: %v", err)
		}
	}
}

// formatMessage creates a plain text notification message from the result.
func (s *Service) formatMessage(r Result) string {
	var b strings.Builder

	verdict := "failed"
	if r.Status == status.OutcomePassed {
		verdict = "passed"
	}
	fmt.Fprintf(&b, "flowcheck %s on %s\n\n", verdict, s.hostname)

	line := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%-11s %s\n", label+":", value)
		}
	}

	line("target", r.Target)
	line("browser", r.Browser)
	rev := r.Branch
	if rev != "" && r.Commit != "" {
		rev += " @ " + r.Commit
	}
	line("branch", rev)
	line("duration", r.Duration)
	line("steps", fmt.Sprintf("%d", r.Steps))
	line("screenshot", r.Screenshot)
	line("failed at", r.FailedStep)
	line("error", r.Error)

	return b.String()
}

// makeTelegramChannel creates a telegram notifier sending to telegram:<chat>?parseMode=HTML.
func makeTelegramChannel(p Params) (channel, error) {
	tg, err := ntfy.NewTelegram(ntfy.TelegramParams{Token: p.TelegramToken})
	if err != nil {
		return channel{}, fmt.Errorf("create telegram notifier: %w", err)
	}
	return channel{notifier: tg, dest: fmt.Sprintf("telegram:%s?parseMode=HTML", p.TelegramChat), htmlEscape: true}, nil
}

// makeEmailChannel creates an smtp notifier with a mailto: destination for all recipients.
func makeEmailChannel(p Params) ([]channel, error) {
	switch {
	case p.SMTPHost == "":
		return nil, errors.New("notify_smtp_host is required")
	case p.EmailFrom == "":
		return nil, errors.New("notify_email_from is required")
	case len(p.EmailTo) == 0:
		return nil, errors.New("notify_email_to is required")
	}

	em := ntfy.NewEmail(ntfy.SMTPParams{
		Host:     p.SMTPHost,
		Port:     p.SMTPPort,
		Username: p.SMTPUsername,
		Password: p.SMTPPassword,
		StartTLS: p.SMTPStartTLS,
	})
	dest := fmt.Sprintf("mailto:%s?from=%s&subject=%s",
		strings.Join(p.EmailTo, ","), url.QueryEscape(p.EmailFrom), url.QueryEscape("flowcheck notification"))
	return []channel{{notifier: em, dest: dest}}, nil
}

// makeSlackChannel creates a slack notifier posting to the configured channel.
func makeSlackChannel(p Params) ([]channel, error) {
	if p.SlackToken == "" {
		return nil, errors.New("notify_slack_token is required")
	}
	if p.SlackChannel == "" {
		return nil, errors.New("notify_slack_channel is required")
	}
	return []channel{{notifier: ntfy.NewSlack(p.SlackToken), dest: "slack:" + p.SlackChannel}}, nil
}

// makeWebhookChannels shares one webhook notifier across all configured URLs.
func makeWebhookChannels(p Params) ([]channel, error) {
	if len(p.WebhookURLs) == 0 {
		return nil, errors.New("notify_webhook_urls is required")
	}
	wh := ntfy.NewWebhook(ntfy.WebhookParams{})
	channels := make([]channel, 0, len(p.WebhookURLs))
	for _, u := range p.WebhookURLs {
		channels = append(channels, channel{notifier: wh, dest: u})
	}
	return channels, nil
}
