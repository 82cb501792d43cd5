package bot

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"market-mood/internal/domain"
	"market-mood/internal/service"

	tele "gopkg.in/telebot.v3"
)

func StartTelegramBot(sentiment *service.SentimentService) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Println("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		log.Fatalf("failed to create Telegram bot: %v", err)
	}

	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	b.Handle("/mood", func(c tele.Context) error {
		snap, err := sentiment.GetSnapshot(context.Background())
		if err != nil {
			return c.Send(fmt.Sprintf("Error fetching the Fear & Greed index: %v", err))
		}
		return c.Send(formatCurrent(snap.Current))
	})

	b.Handle("/indicators", func(c tele.Context) error {
		snap, err := sentiment.GetSnapshot(context.Background())
		if err != nil {
			return c.Send(fmt.Sprintf("Error fetching the Fear & Greed index: %v", err))
		}
		return c.Send(formatIndicators(snap.Indicators))
	})

	log.Println("Telegram bot started")
	go b.Start()
}

func formatCurrent(current domain.IndexReading) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Fear & Greed Index: %.1f (%s)\n", current.Score, current.Band)
	fmt.Fprintf(&sb, "%+.1f vs previous close", current.Delta())
	if !current.ObservedAt.IsZero() {
		fmt.Fprintf(&sb, "\nUpdated: %s", current.ObservedAt.UTC().Format("Jan 02, 2006 15:04 UTC"))
	}
	return sb.String()
}

func formatIndicators(indicators []domain.IndicatorReading) string {
	if len(indicators) == 0 {
		return "Component indicators are not available right now."
	}
	var sb strings.Builder
	sb.WriteString("Component indicators:")
	for _, ind := range indicators {
		fmt.Fprintf(&sb, "\n%s: %.1f (%s)", ind.Label, ind.Score, ind.Band)
	}
	return sb.String()
}
