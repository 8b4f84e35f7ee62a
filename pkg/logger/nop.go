package logger

import (
	"fmt"
	"os"
)

// Nop returns a logger that discards everything. Fatal still exits and
// Panic still panics.
func Nop() Logger { return nop{} }

type nop struct{}

func (n nop) WithField(string, any) Logger { return n }
func (n nop) WithFields(map[string]any) Logger { return n }
func (n nop) WithError(error) Logger { return n }
func (nop) Print(...any) {}
func (nop) Trace(...any) {}
func (nop) Debug(...any) {}
func (nop) Info(...any) {}
func (nop) Warn(...any) {}
func (nop) Error(...any) {}
func (nop) Fatal(...any) { os.Exit(1) }
func (nop) Panic(args ...any) { panic(fmt.Sprint(args...)) }
func (nop) Printf(string, ...any) {}
func (nop) Tracef(string, ...any) {}
func (nop) Debugf(string, ...any) {}
func (nop) Infof(string, ...any) {}
func (nop) Warnf(string, ...any) {}
func (nop) Errorf(string, ...any) {}
func (nop) Fatalf(string, ...any) { os.Exit(1) }
func (nop) Panicf(format string, args ...any) { panic(fmt.Sprintf(format, args...)) }
func (nop) SetLevel(Level) {}
func (nop) GetLevel() Level { return Disabled }
