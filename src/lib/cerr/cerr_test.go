package cerr_test

import (
	"errors"
	"fasta-fetcher-workers/src/lib/cerr"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"

	. "github.com/onsi/gomega"

	. "github.com/onsi/ginkgo"
)

var _ = Describe("Contextual errors", func() {
	var rootCause error

	BeforeEach(func() {
		rootCause = errors.New("disk on fire")
	})

	It("formats the message with its cause", func() {
		err := cerr.Wrap(rootCause).Error("Failed to write")
		Expect(err.Error()).To(Equal("Failed to write: disk on fire"))
	})

	It("formats a bare message", func() {
		err := cerr.Error("Nothing here")
		Expect(err.Error()).To(Equal("Nothing here"))
	})

	It("unwraps to the cause", func() {
		err := cerr.Field("identifier", "1ABC").Wrap(rootCause).Error("Failed to write")
		Expect(errors.Is(err, rootCause)).To(BeTrue())
	})

	It("doesn't share fields between derived contexts", func() {
		base := cerr.Field("identifier", "1ABC")
		first := base.Field("path", "/a")
		second := base.Field("path", "/b")

		Expect(first.ContextFields["path"]).To(Equal("/a"))
		Expect(second.ContextFields["path"]).To(Equal("/b"))
		Expect(base.ContextFields).NotTo(HaveKey("path"))
	})

	It("carries inner fields outward", func() {
		inner := cerr.Field("path", "/a").Error("Failed to open")
		outer := cerr.Field("identifier", "1ABC").Wrap(inner).Error("Failed to fetch")

		ctxErr, ok := outer.(cerr.ContextualError)
		Expect(ok).To(BeTrue())
		Expect(ctxErr.Context.ContextFields).To(HaveKeyWithValue("path", "/a"))
		Expect(ctxErr.Context.ContextFields).To(HaveKeyWithValue("identifier", "1ABC"))
	})

	Describe("Logging", func() {
		var handler *memory.Handler

		BeforeEach(func() {
			handler = memory.New()
		})

		It("logs the fields alongside the message", func() {
			logger := &log.Logger{Handler: handler, Level: log.DebugLevel}
			cerr.LogTo(logger, cerr.Field("identifier", "1ABC").Wrap(rootCause).Error("Failed to write"))

			Expect(handler.Entries).To(HaveLen(1))
			Expect(handler.Entries[0].Level).To(Equal(log.ErrorLevel))
			Expect(handler.Entries[0].Message).To(Equal("Failed to write: disk on fire"))
			Expect(handler.Entries[0].Fields).To(HaveKeyWithValue("identifier", "1ABC"))
		})

		It("logs plain errors", func() {
			logger := &log.Logger{Handler: handler, Level: log.DebugLevel}
			cerr.LogTo(logger, rootCause)

			Expect(handler.Entries).To(HaveLen(1))
			Expect(handler.Entries[0].Message).To(Equal("disk on fire"))
		})
	})
})
