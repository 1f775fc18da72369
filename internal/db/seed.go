package db

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Demo account credentials created by Seed.
const (
	DemoHandle   = "demo"
	DemoPassword = "demo123"
)

// Seed inserts a demo account with a few campaigns and daily metric entries.
// It does nothing when the demo account already exists.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		var ownerID int64
		err := tx.QueryRow(ctx, `INSERT INTO accounts (handle, email, password_hash)
VALUES ($1, $2, $3) ON CONFLICT DO NOTHING RETURNING id`,
			DemoHandle, DemoHandle+"@example.com", string(hash)).Scan(&ownerID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		today := time.Now().UTC().Truncate(24 * time.Hour)
		channels := []string{"Instagram", "Facebook", "Google Ads", "Newsletter", "TikTok"}
		statuses := []string{"active", "active", "paused", "active", "completed"}

		for i, channel := range channels {
			name := fmt.Sprintf("%s campaign %d", channel, i+1)
			budget := float64(500 + r.Intn(20)*100)
			start := today.AddDate(0, 0, -14)
			end := today.AddDate(0, 0, 14+r.Intn(30))

			var campaignID int64
			err = tx.QueryRow(ctx, `INSERT INTO campaigns
    (owner_id, name, budget, channel, start_date, end_date, status)
VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`,
				ownerID, name, budget, channel, start, end, statuses[i]).Scan(&campaignID)
			if err != nil {
				return err
			}

			// one entry per elapsed day
			for d := 0; d < 14; d++ {
				impressions := 500 + r.Intn(5000)
				clicks := impressions * (1 + r.Intn(4)) / 100
				conversions := clicks * r.Intn(15) / 100
				spend := float64(10+r.Intn(60)) + float64(r.Intn(100))/100
				_, err = tx.Exec(ctx, `INSERT INTO metric_entries
(campaign_id, date, impressions, clicks, conversions, spend)
VALUES ($1,$2,$3,$4,$5,$6)`,
					campaignID, start.AddDate(0, 0, d), impressions, clicks, conversions, spend)
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}
