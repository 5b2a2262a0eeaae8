// ABOUTME: Source registry interface supplying the targets of an aggregation run
// ABOUTME: Implementations come from configuration and are swapped for test doubles

package interfaces

import "newsagg-api/core/domain"

// SourceRegistry produces the ordered list of fetch targets.
// List must return the same sequence for the duration of one aggregation run;
// the aggregator treats the result as a snapshot and never mutates it.
type SourceRegistry interface {
	List() []domain.FetchTarget
}
