// Package log is a small leveled logger writing to stderr. Every line carries
// the calling file and line number.
package log

import (
	"fmt"
	"io"
	glog "log"
	"os"
	"path"
	"runtime"

	"github.com/cobaltgit/fbscreenshot/internal/config"
)

var infoLogger, warningLogger, debugLogger *glog.Logger

func init() {
	SetOutput(os.Stderr)
}

// SetOutput redirects all levels to w.
func SetOutput(w io.Writer) {
	infoLogger = glog.New(w, "INFO: ", glog.Ldate|glog.Ltime)
	warningLogger = glog.New(w, "WARNING: ", glog.Ldate|glog.Ltime)
	debugLogger = glog.New(w, "DEBUG: ", glog.Ldate|glog.Ltime)
}

// emit prefixes msg with the file and line of the exported caller.
func emit(l *glog.Logger, msg string) {
	_, file, line, _ := runtime.Caller(2)
	l.Printf("%s:%d: %s", path.Base(file), line, msg)
}

// Infof logs a progress line.
func Infof(f string, args ...interface{}) { emit(infoLogger, fmt.Sprintf(f, args...)) }

// Warning logs a condition the capture carries on past.
func Warning(args ...interface{}) { emit(warningLogger, fmt.Sprint(args...)) }

// Debugf logs only when config.Debug is set.
func Debugf(f string, args ...interface{}) {
	if config.Debug {
		emit(debugLogger, fmt.Sprintf(f, args...))
	}
}
