package orm

import "github.com/gravitational/trace"

// badParameters folds errs into a single trace.BadParameter error
func badParameters(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	return trace.BadParameter("%v", trace.NewAggregate(errs...))
}
