package utils

import (
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/seventv/yargs/constants"
	"github.com/seventv/yargs/logger"
	"go.uber.org/zap"
)

type LoaderOptions struct {
	FetchingText string
	SuccessText  string
	FailureText  string
}

// Loader shows a spinner in terminals, a plain log line otherwise, until the
// returned function is called with the outcome.
func Loader(options LoaderOptions) func(success bool) {
	done := make(chan bool)
	finished := make(chan struct{})
	go func() {
		defer close(finished)

		if !constants.InTerm() {
			logger.Info(options.FetchingText)
			if <-done {
				logger.Info(options.SuccessText)
			} else {
				logger.Error(options.FailureText)
			}
			return
		}

		t := time.NewTicker(100 * time.Millisecond)
		defer t.Stop()

		stages := []string{"\\", "|", "/", "-"}
		for i := 0; ; i++ {
			select {
			case <-t.C:
				zap.S().Infof("%s [%s]\r", color.YellowString(options.FetchingText), color.CyanString("%s", stages[i%len(stages)]))
			case success := <-done:
				if success {
					zap.S().Infof("%s %s", color.GreenString("✓"), options.SuccessText)
				} else {
					zap.S().Infof("%s %s", color.RedString("✗"), options.FailureText)
				}
				return
			}
		}
	}()

	once := sync.Once{}
	return func(success bool) {
		once.Do(func() {
			done <- success
			<-finished
		})
	}
}
