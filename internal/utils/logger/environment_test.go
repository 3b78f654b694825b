package logger

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Logger Environment", func() {
	DescribeTable("per-environment configuration",
		func(build func() zap.Config, level zap.AtomicLevel, development, noCaller, noStacktrace bool, encoding string) {
			cfg := build()

			Expect(cfg.Level.Level()).To(Equal(level.Level()))
			Expect(cfg.Development).To(Equal(development))
			Expect(cfg.DisableCaller).To(Equal(noCaller))
			Expect(cfg.DisableStacktrace).To(Equal(noStacktrace))
			Expect(cfg.Encoding).To(Equal(encoding))
		},
		Entry("production", newProductionLoggerConfig, zap.NewAtomicLevelAt(zap.InfoLevel), false, false, false, "json"),
		Entry("staging", newStagingLoggerConfig, zap.NewAtomicLevelAt(zap.InfoLevel), false, true, true, "json"),
		Entry("development", newDevelopmentLoggerConfig, zap.NewAtomicLevelAt(zap.DebugLevel), true, true, true, "console"),
		Entry("test", newTestLoggerConfig, zap.NewAtomicLevelAt(zap.InfoLevel), false, false, false, "json"),
	)

	It("writes production, staging and development logs to stdout", func() {
		for _, cfg := range []zap.Config{newProductionLoggerConfig(), newStagingLoggerConfig(), newDevelopmentLoggerConfig()} {
			Expect(cfg.OutputPaths).To(Equal([]string{"stdout"}))
			Expect(cfg.ErrorOutputPaths).To(Equal([]string{"stderr"}))
		}
	})

	It("discards test logs", func() {
		cfg := newTestLoggerConfig()
		Expect(cfg.OutputPaths).To(BeEmpty())
		Expect(cfg.ErrorOutputPaths).To(BeEmpty())
	})
})
