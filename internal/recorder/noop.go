package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordTurn(_ *Turn) error                 { return nil }
func (n *NoopRecorder) RecordUnlock(_ *UnlockEvent) error        { return nil }
func (n *NoopRecorder) RecordGoalSnapshot(_ *GoalSnapshot) error { return nil }
func (n *NoopRecorder) RecordProfileEvent(_ *ProfileEvent) error { return nil }
func (n *NoopRecorder) Close() error                             { return nil }
