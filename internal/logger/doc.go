// Package logger wraps zap for the config-property CLI:
//   - a global sugared console logger writing to stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing,
//   - per-logger and per-context level override (WithLevel, WithLevelContext).
//
// Packages take a context and log through it, so the component name and
// fields attached by callers follow every message.
package logger
