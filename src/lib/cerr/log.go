package cerr

import (
	"github.com/apex/log"
)

func Log(err error) {
	LogTo(log.Log, err)
}

func LogTo(logger log.Interface, err error) {
	ctxErr, ok := err.(ContextualError)
	if !ok || len(ctxErr.Context.ContextFields) == 0 {
		logger.Error(err.Error())
		return
	}

	logger.WithFields(log.Fields(ctxErr.Context.ContextFields)).Error(err.Error())
}
