package entity

type Status string

const (
	Downloaded         Status = "downloaded"
	TransportFailure   Status = "transport_failure"
	PersistenceFailure Status = "persistence_failure"
)

type Result struct {
	Identifier string
	Path       string
	Status     Status
	Bytes      int
	Err        error
}

func (r Result) Succeeded() bool {
	return r.Status == Downloaded
}

type Summary struct {
	Total              int
	Downloaded         int
	TransportFailure   int
	PersistenceFailure int
	Failed             []string
}

func Summarize(results []Result) Summary {
	summary := Summary{Total: len(results)}

	for _, result := range results {
		switch result.Status {
		case Downloaded:
			summary.Downloaded++
			continue
		case TransportFailure:
			summary.TransportFailure++
		case PersistenceFailure:
			summary.PersistenceFailure++
		}

		summary.Failed = append(summary.Failed, result.Identifier)
	}

	return summary
}
