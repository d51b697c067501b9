/*
Package logging supplies go-kit logger construction for this library: leveled
filtering from Options, viper unmarshalling, a testing.T-backed logger, and a
capture logger for asserting on emitted entries.  The primitives themselves
never log; only the instrumentation decorators do.
*/
package logging
