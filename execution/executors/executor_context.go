package executors

import (
	"fmt"

	"github.com/ryogrid/QueryRunner/catalog/catalog_interface"
)

type JoinStrategy int32

const (
	HashJoinStrategy JoinStrategy = iota
	SortMergeJoinStrategy
)

func (s JoinStrategy) String() string {
	switch s {
	case HashJoinStrategy:
		return "hash"
	case SortMergeJoinStrategy:
		return "merge"
	}
	return "unknown"
}

func ParseJoinStrategy(name string) (JoinStrategy, error) {
	switch name {
	case "hash":
		return HashJoinStrategy, nil
	case "merge":
		return SortMergeJoinStrategy, nil
	}
	return HashJoinStrategy, fmt.Errorf("unknown join strategy: %s", name)
}

/**
 * ExecutorContext stores all the context necessary to run an executor.
 */
type ExecutorContext struct {
	catalog      catalog_interface.CatalogInterface
	joinStrategy JoinStrategy
}

func NewExecutorContext(catalog catalog_interface.CatalogInterface, joinStrategy JoinStrategy) *ExecutorContext {
	return &ExecutorContext{catalog, joinStrategy}
}

func (e *ExecutorContext) GetCatalog() catalog_interface.CatalogInterface {
	return e.catalog
}

func (e *ExecutorContext) GetJoinStrategy() JoinStrategy {
	return e.joinStrategy
}
