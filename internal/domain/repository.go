package domain

import "context"

// ProductExtractor turns a free-text (and optionally photographed)
// product description into a structured analysis.
type ProductExtractor interface {
	ExtractProduct(ctx context.Context, term string, base64Image string) (*ProductAnalysis, error)
}

// SafetyOracle is the external judgment call that can flag a computed
// score as dangerously misleading. Implementations receive only the
// product name, the computed score, and its category label.
type SafetyOracle interface {
	Judge(ctx context.Context, productName string, score int, category string) (*SafetyJudgment, error)
}

// HistoryRepository persists scan records per client identifier. The
// engine only needs Add to succeed eventually; failures are logged and
// never fail an analyze call.
type HistoryRepository interface {
	Add(ctx context.Context, clientID string, record *ScanRecord) error
	List(ctx context.Context, clientID string, limit int) ([]*ScanRecord, error)
	Clear(ctx context.Context, clientID string) error
}
