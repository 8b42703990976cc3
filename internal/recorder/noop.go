package recorder

import "CozyFishing/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRun(_ *model.RunSummary) error      { return nil }
func (n *NoopRecorder) RecordCatch(_ *CatchRecord) error         { return nil }
func (n *NoopRecorder) RecordPurchase(_ *PurchaseRecord) error   { return nil }
func (n *NoopRecorder) RecordMilestone(_ *MilestoneRecord) error { return nil }
func (n *NoopRecorder) Close() error                             { return nil }
