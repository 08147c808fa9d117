// Command seed mirrors a purchase or a subscription into the ledger
// so that paywalls can be exercised locally without the payment provider.
package main

import (
	"chat-vault/domain"
	"chat-vault/ledger"
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"gorm.io/gorm/logger"
)

type config struct {
	LedgerDriver string `env:"LEDGER_DRIVER,default=sqlite"`
	LedgerDSN    string `env:"LEDGER_DSN,required=true"`
}

func main() {
	kind := flag.String("kind", "purchase", "Entry to record: purchase or subscription")
	userID := flag.String("user", "", "Buyer or subscriber ID")
	contentID := flag.String("content", "", "Purchased message ID")
	amount := flag.Int64("amount", 0, "Purchase amount in minor units")
	currency := flag.String("currency", "USD", "Purchase currency")
	ownerID := flag.String("owner", "", "Creator the subscription belongs to")
	tier := flag.String("tier", "basic", "Subscription tier")
	days := flag.Int("days", 30, "Subscription period length in days")
	flag.Parse()

	_ = godotenv.Load()
	var cfg config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		log.Fatalf("config error: %v", err)
	}
	db, err := ledger.Open(cfg.LedgerDriver, cfg.LedgerDSN, logger.Warn)
	if err != nil {
		log.Fatalf("ledger error: %v", err)
	}

	ctx := context.Background()
	switch strings.ToLower(*kind) {
	case "purchase":
		price, err := domain.NewPrice(*amount, *currency)
		if err != nil {
			log.Fatalf("invalid price: %v", err)
		}
		if err = ledger.NewPurchaseLedger(db).Record(ctx, *userID, *contentID, price); err != nil {
			log.Fatalf("purchase not recorded: %v", err)
		}
		fmt.Printf("purchase recorded: %s bought %s for %d %s\n", *userID, *contentID, price.Amount, price.Currency)
	case "subscription":
		sub := domain.Subscription{
			SubscriberID:     *userID,
			OwnerID:          *ownerID,
			Status:           domain.SubscriptionActive,
			Tier:             *tier,
			CurrentPeriodEnd: time.Now().UTC().AddDate(0, 0, *days),
		}
		if err = ledger.NewSubscriptionLedger(db).Upsert(ctx, sub); err != nil {
			log.Fatalf("subscription not recorded: %v", err)
		}
		fmt.Printf("subscription recorded: %s follows %s until %s\n", *userID, *ownerID, sub.CurrentPeriodEnd.Format(time.RFC3339))
	default:
		log.Fatalf("unknown kind %q", *kind)
	}
}
