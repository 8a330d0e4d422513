package driver

// Stage names the step a file has reached.
type Stage uint8

const (
	StageQueued Stage = iota
	StageParse
	StageExpand
	StageFormat
	StageWrite
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageQueued:
		return "queued"
	case StageParse:
		return "parse"
	case StageExpand:
		return "expand"
	case StageFormat:
		return "format"
	case StageWrite:
		return "write"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}

// ProgressEvent reports that the file at Index (of Total) reached Stage.
// Err is set on the StageDone event of a failed file.
type ProgressEvent struct {
	Path  string
	Index int
	Total int
	Stage Stage
	Err   error
}

// ProgressFunc receives progress events. It is called from worker
// goroutines and must be safe for concurrent use.
type ProgressFunc func(ProgressEvent)

func (f ProgressFunc) emit(ev ProgressEvent) {
	if f != nil {
		f(ev)
	}
}
