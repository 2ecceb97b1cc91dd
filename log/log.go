package log

import (
	"github.com/neuronlabs/neuron-core/log"
)

var logger = log.NewModuleLogger("CONTENT-NEGOTIATION")

// log levels constants
//noinspection GoUnusedConst,SpellCheckingInspection
const (
	LDEBUG3   = log.LDEBUG3
	LDEBUG2   = log.LDEBUG2
	LDEBUG    = log.LDEBUG
	LINFO     = log.LINFO
	LWARNING  = log.LWARNING
	LERROR    = log.LERROR
	LCRITICAL = log.LCRITICAL
)

//noinspection ALL
var (
	// SetLevel is the set level function
	SetLevel = logger.SetLevel
	// Level is the current module log level.
	Level = logger.Level
	// Debug3f writes the formatted debug log.
	Debug3f = logger.Debug3f
	// Debug2f writes the formatted debug log.
	Debug2f = logger.Debug2f
	// Debugf writes the formatted debug log.
	Debugf = logger.Debugf
	// Infof writes the formatted info log.
	Infof = logger.Infof
	// Warningf writes the formatted warning log.
	Warningf = logger.Warningf
	// Errorf writes the formatted error log.
	Errorf = logger.Errorf
	// Debug writes the  debug log.
	Debug = logger.Debug
	// Info writes the info log.
	Info = logger.Info
	// Warning writes the warning log.
	Warning = logger.Warning
	// Error writes the error log.
	Error = logger.Error
)
