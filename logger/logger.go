package logger

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uilive"
	"github.com/seventv/yargs/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type writer struct {
	out *uilive.Writer
}

var Out io.Writer
var previousLine = struct {
	Data       []byte
	WasRewrite bool
}{}

// LoggerRewrite prints the last rewritable line again so it is not lost
// under the next one.
func LoggerRewrite() {
	if len(previousLine.Data) != 0 && previousLine.WasRewrite {
		_, _ = Out.Write(previousLine.Data)
		previousLine.WasRewrite = false
	}
}

// Write treats a message ending in "\r\n" as a status line the next message
// may overwrite.
func (w *writer) Write(msg []byte) (int, error) {
	defer w.out.Flush()

	if len(msg) > 2 && msg[len(msg)-2] == '\r' {
		msg[len(msg)-2] = '\n'
		msg = msg[:len(msg)-1]

		previousLine.Data = msg
		previousLine.WasRewrite = true

		return w.out.Write(msg)
	}

	previousLine.Data = nil
	previousLine.WasRewrite = false

	return w.out.Bypass().Write(msg)
}

func init() {
	setupLogger(false, nil)
}

func setupLogger(debug bool, out io.Writer) {
	cfg := zap.NewProductionConfig()

	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05,000")
	cfg.EncoderConfig.ConsoleSeparator = " "
	cfg.EncoderConfig.StacktraceKey = ""
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	lvl := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		lvl = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.EncoderConfig.CallerKey = ""
		cfg.EncoderConfig.LevelKey = ""
		cfg.EncoderConfig.TimeKey = ""
	}

	if out != nil {
		Out = out
	} else {
		Out = color.Error
		if constants.InTerm() {
			uilive.Out = Out
			Out = &writer{out: uilive.New()}
		}
	}

	logger := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg.EncoderConfig),
		zapcore.AddSync(Out),
		lvl,
	))

	zap.ReplaceGlobals(logger)
}

func SetDebug(debug bool) {
	setupLogger(debug, nil)
}

// SetOutput sends all log output to out, bypassing terminal detection.
func SetOutput(out io.Writer, debug bool) {
	setupLogger(debug, out)
}

var marker = color.New(color.Bold, color.FgBlack)

func line(prefix string, paint func(string, ...any) string, format string, args ...any) string {
	return fmt.Sprintf("%s %s", marker.Sprint(prefix), paint(format, args...))
}

func Debug(args ...any) {
	zap.S().Debug(line(":", color.MagentaString, "%s", fmt.Sprint(args...)))
}

func Debugf(format string, args ...any) {
	zap.S().Debug(line(":", color.MagentaString, format, args...))
}

func Info(args ...any) {
	zap.S().Info(line(">", color.WhiteString, "%s", fmt.Sprint(args...)))
}

func Infof(format string, args ...any) {
	zap.S().Info(line(">", color.WhiteString, format, args...))
}

func Warn(args ...any) {
	zap.S().Warn(line("->", color.YellowString, "%s", fmt.Sprint(args...)))
}

func Warnf(format string, args ...any) {
	zap.S().Warn(line("->", color.YellowString, format, args...))
}

func Error(args ...any) {
	zap.S().Error(line("=>", color.RedString, "%s", fmt.Sprint(args...)))
}

func Errorf(format string, args ...any) {
	zap.S().Error(line("=>", color.RedString, format, args...))
}

func Fatal(args ...any) {
	zap.S().Fatal(line("=>", color.RedString, "%s", fmt.Sprint(args...)))
}

func Fatalf(format string, args ...any) {
	zap.S().Fatal(line("=>", color.RedString, format, args...))
}
