package worker

// receipt_worker.go
// Processes receipt jobs from QueueReceipts: renders the transaction as a
// PDF ticket and, when the customer left an email at the register, sends it
// as an attachment. Delivery is best-effort with exponential backoff;
// exhausted jobs land in the DLQ.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mdSHash/SleekSell/internal/infra"
	"github.com/mdSHash/SleekSell/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ReceiptJobPayload carries the full transaction so the worker needs no
// access to the in-memory transaction log.
type ReceiptJobPayload struct {
	Transaction   model.Transaction `json:"transaction"`
	CustomerEmail string            `json:"customer_email,omitempty"`
}

// ReceiptWorker renders and delivers receipts for completed checkouts.
type ReceiptWorker struct {
	mailer      *infra.Mailer
	rdb         *redis.Client
	storagePath string
}

func NewReceiptWorker(mailer *infra.Mailer, rdb *redis.Client, storagePath string) *ReceiptWorker {
	return &ReceiptWorker{mailer: mailer, rdb: rdb, storagePath: storagePath}
}

// Process renders the PDF and optionally emails it.
func (w *ReceiptWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReceiptJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("receipt_worker: invalid payload")
		SendToDLQ(ctx, w.rdb, QueueReceipts, "receipt", raw, "invalid payload: "+err.Error(), 0)
		return
	}

	txn := payload.Transaction
	pdfPath, err := infra.GenerateReceiptPDF(txn, w.storagePath)
	if err != nil {
		log.Error().Err(err).Int("transaction_id", txn.ID).Msg("receipt_worker: PDF generation failed")
		SendToDLQ(ctx, w.rdb, QueueReceipts, "receipt", raw, "pdf: "+err.Error(), 1)
		return
	}
	log.Info().Str("pdf", pdfPath).Int("transaction_id", txn.ID).Msg("receipt_worker: PDF generated")

	if payload.CustomerEmail == "" {
		return
	}

	const maxAttempts = 3
	sendErr := withRetry(ctx, maxAttempts, func(attempt int) error {
		err := w.mailer.SendReceipt(
			payload.CustomerEmail,
			fmt.Sprintf("SleekSell — Receipt No. %d", txn.ID),
			fmt.Sprintf("Your purchase receipt is attached.\nTotal: $%s", txn.Total.StringFixed(2)),
			pdfPath,
		)
		if err != nil {
			log.Warn().Err(err).Int("attempt", attempt+1).
				Int("transaction_id", txn.ID).Msg("receipt_worker: send attempt failed, retrying")
		}
		return err
	})
	if sendErr != nil {
		log.Error().Err(sendErr).Str("to", payload.CustomerEmail).
			Int("transaction_id", txn.ID).Msg("receipt_worker: delivery failed after all retries")
		SendToDLQ(ctx, w.rdb, QueueReceipts, "receipt", raw, "email: "+sendErr.Error(), maxAttempts)
		return
	}
	log.Info().Str("to", payload.CustomerEmail).Int("transaction_id", txn.ID).Msg("receipt_worker: receipt sent")
}
