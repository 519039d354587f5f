package bytecursor

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

type loggerRef struct {
	l logrus.FieldLogger
}

// logger is nil until SetLogger installs one; reject then falls back to the
// logrus standard logger.
var logger atomic.Pointer[loggerRef]

// SetLogger replaces the logger used to report rejected operations. It is safe
// to call while other goroutines use the package. Passing nil restores the
// logrus standard logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		logger.Store(nil)
		return
	}
	logger.Store(&loggerRef{l: l})
}

func currentLogger() logrus.FieldLogger {
	if ref := logger.Load(); ref != nil {
		return ref.l
	}
	return logrus.StandardLogger()
}

// reject logs a failed operation at debug level and hands the error back.
func reject(op string, fields logrus.Fields, err error) error {
	fields["op"] = op
	currentLogger().WithFields(fields).Debug(err)
	return err
}
