package logger

import (
	"bytes"
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dwarvesf/btc-utxo-analytics/internal/types/environments"
)

type customWriteHook struct {
	called bool
}

func (h *customWriteHook) OnWrite(_ *zapcore.CheckedEntry, _ []zapcore.Field) {
	h.called = true
}

var _ = Describe("Logger", func() {
	var logger *Logger

	Describe("#New", func() {
		It("should create a logger for every known environment", func() {
			for _, env := range []environments.Environment{
				environments.Production,
				environments.Development,
				environments.Staging,
				environments.Test,
			} {
				logger = New(env)
				Expect(logger).NotTo(BeNil())
				Expect(logger.wrappedLogger).NotTo(BeNil())
			}
		})

		It("should fall back to production settings when environment is unknown", func() {
			logger = New(environments.Environment("unknown"))
			Expect(logger).NotTo(BeNil())

			core := logger.wrappedLogger.Core()
			Expect(core.Enabled(zapcore.InfoLevel)).To(BeTrue())
			Expect(core.Enabled(zapcore.DebugLevel)).To(BeFalse())
		})
	})

	Describe("#NewWithOutput", func() {
		It("should build a stderr logger for the stdio transport", func() {
			logger = NewWithOutput(environments.Production, "stderr")
			Expect(logger).NotTo(BeNil())
			Expect(func() { logger.Info("to stderr") }).NotTo(Panic())
		})

		It("should keep test output discarded", func() {
			logger = NewWithOutput(environments.Test, "stderr")
			Expect(logger).NotTo(BeNil())
		})
	})

	Describe("leveled logging", func() {
		BeforeEach(func() {
			logger = New(environments.Test)
		})

		It("should log at every level without panicking", func() {
			Expect(func() {
				logger.Debug("debug message", map[string]string{"key": "value"})
				logger.Info("info message", map[string]string{"key": "value"})
				logger.Warn("warn message", map[string]string{"key": "value"})
				logger.Error("error message", map[string]string{"key": "value"})
				logger.Info("no fields")
				logger.Sync()
			}).NotTo(Panic())
		})
	})

	Describe("#Fatal", func() {
		BeforeEach(func() {
			logger = New(environments.Test)
		})

		It("should log fatal messages", func() {
			hook := &customWriteHook{}
			originalLogger := logger.wrappedLogger
			defer func() { logger.wrappedLogger = originalLogger }()

			logger.wrappedLogger = zap.New(
				zapcore.NewCore(
					zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
					zapcore.AddSync(&bytes.Buffer{}),
					zap.FatalLevel,
				),
				zap.WithFatalHook(hook),
			)

			logger.Fatal("fatal message", map[string]string{"key": "value"})
			Expect(hook.called).To(BeTrue())
		})
	})

	Describe("#ErrorLogger", func() {
		It("should forward standard library log lines at error level", func() {
			core, logs := observer.New(zap.DebugLevel)
			logger = &Logger{wrappedLogger: zap.New(core)}

			logger.ErrorLogger().Printf("Error reading input: %v", "broken pipe")

			Expect(logs.Len()).To(Equal(1))
			entry := logs.All()[0]
			Expect(entry.Level).To(Equal(zapcore.ErrorLevel))
			Expect(entry.Message).To(Equal("Error reading input: broken pipe"))
		})
	})

	Describe("#transformStrMapToFields", func() {
		It("should transform a string map to zap fields", func() {
			fields := transformStrMapToFields(map[string]string{
				"key1": "value1",
				"key2": "value2",
			})

			sort.Slice(fields, func(i, j int) bool {
				return fields[i].Key < fields[j].Key
			})

			Expect(fields).To(HaveLen(2))
			Expect(fields[0]).To(Equal(zap.String("key1", "value1")))
			Expect(fields[1]).To(Equal(zap.String("key2", "value2")))
		})

		It("should return an empty slice for an empty input map", func() {
			Expect(transformStrMapToFields(map[string]string{})).To(BeEmpty())
		})
	})
})
