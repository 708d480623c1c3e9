package app

import (
	"context"
	"fmt"
	"time"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/controller/callbacks/common/formatting"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/service"
	"github.com/RuthlessG-CYBER/renthub-bot/internal/session"
	"github.com/go-telegram/bot"
	"go.uber.org/zap"
)

// Notifier polls the backend feed for every logged-in chat and pushes
// notifications the chat has not been shown yet. The backend has no push
// channel, so polling is the delivery mechanism.
type Notifier struct {
	bot           *bot.Bot
	sessions      *session.Store
	notifications *service.NotificationService
	interval      time.Duration
	logger        *zap.Logger
	stopChan      chan struct{}

	// seen holds notification ids already pushed, to avoid repeats while
	// the user leaves them unread.
	seen map[string]struct{}
}

func NewNotifier(
	b *bot.Bot,
	sessions *session.Store,
	notifications *service.NotificationService,
	interval time.Duration,
	logger *zap.Logger,
) *Notifier {
	return &Notifier{
		bot:           b,
		sessions:      sessions,
		notifications: notifications,
		interval:      interval,
		logger:        logger,
		stopChan:      make(chan struct{}),
		seen:          make(map[string]struct{}),
	}
}

// Start launches the polling loop.
func (n *Notifier) Start(ctx context.Context) {
	n.logger.Info("Starting notification poller",
		zap.Duration("interval", n.interval))

	go n.run(ctx)
}

// Stop terminates the polling loop.
func (n *Notifier) Stop() {
	n.logger.Info("Stopping notification poller")
	close(n.stopChan)
}

func (n *Notifier) run(ctx context.Context) {
	// Seed the seen set first so a restart doesn't replay old unread items
	n.poll(ctx, false)

	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n.poll(ctx, true)
		case <-n.stopChan:
			n.logger.Info("Notification poller stopped")
			return
		case <-ctx.Done():
			n.logger.Info("Notification poller cancelled")
			return
		}
	}
}

// poll walks every active session and pushes unseen unread notifications.
func (n *Notifier) poll(ctx context.Context, deliver bool) {
	sessions, err := n.sessions.Active(ctx)
	if err != nil {
		n.logger.Error("Failed to list active sessions", zap.Error(err))
		return
	}

	for _, sess := range sessions {
		feed, err := n.notifications.Feed(ctx, sess.User.ID)
		if err != nil {
			n.logger.Warn("Failed to fetch feed",
				zap.String("user_id", sess.User.ID),
				zap.Error(err),
			)
			continue
		}

		for _, item := range feed {
			if item.IsRead {
				continue
			}
			if _, ok := n.seen[item.ID]; ok {
				continue
			}
			n.seen[item.ID] = struct{}{}

			if !deliver {
				continue
			}
			n.push(ctx, sess, item)
		}
	}
}

func (n *Notifier) push(ctx context.Context, sess *model.Session, item *model.Notification) {
	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: sess.ChatID,
		Text:   fmt.Sprintf("🔔 %s\n\nOpen /dashboard to manage it.", formatting.FormatNotificationCard(item)),
	})
	if err != nil {
		n.logger.Error("Failed to push notification",
			zap.Int64("chat_id", sess.ChatID),
			zap.String("notification_id", item.ID),
			zap.Error(err),
		)
		return
	}

	n.logger.Info("Notification pushed",
		zap.Int64("chat_id", sess.ChatID),
		zap.String("notification_id", item.ID),
	)
}
