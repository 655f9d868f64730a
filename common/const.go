package common

// StatusKind classifies a record status for display purposes.
type StatusKind string

const (
	KindSuccess StatusKind = "success"
	KindFailure StatusKind = "failure"
	KindNeutral StatusKind = "neutral"
)

// Well-known status strings written by the downloader. History records
// may carry arbitrary status text, these are just the values histdl
// itself produces and recognizes for classification.
const (
	StatusComplete  = "Complete!"
	StatusFailed    = "Download Failed"
	StatusCancelled = "Cancelled"

	// Chinese variants kept for histories written under the zh locale.
	StatusCompleteZh = "完成！"
	StatusFailedZh   = "下载失败"
)

// KindOf classifies a status string. Completed statuses map to
// KindSuccess, failed ones to KindFailure, and everything else
// (cancelled, in-progress, custom text) to KindNeutral.
func KindOf(status string) StatusKind {
	switch status {
	case StatusComplete, StatusCompleteZh:
		return KindSuccess
	case StatusFailed, StatusFailedZh:
		return KindFailure
	default:
		return KindNeutral
	}
}
