package entity_test

import (
	"errors"
	"fasta-fetcher-workers/src/application/fasta/entity"
	"strings"

	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	. "github.com/onsi/ginkgo"
)

var _ = Describe("Identifier", func() {
	DescribeTable("accepts",
		func(identifier string) {
			Expect(entity.ValidateIdentifier(identifier)).To(Succeed())
		},
		Entry("a PDB code", "1ABC"),
		Entry("lowercase", "4hhb"),
		Entry("a versioned accession", "NP_000788.2"),
		Entry("dashes", "P12345-2"),
	)

	DescribeTable("rejects",
		func(identifier string) {
			err := entity.ValidateIdentifier(identifier)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, entity.ErrInvalidInput)).To(BeTrue())
		},
		Entry("empty", ""),
		Entry("path traversal", "../etc/passwd"),
		Entry("a separator", "a/b"),
		Entry("a leading dot", ".hidden"),
		Entry("whitespace", "1A BC"),
		Entry("too long", strings.Repeat("A", entity.MaxIdentifierLength+1)),
	)

	It("rejects a batch when any identifier is invalid", func() {
		err := entity.ValidateIdentifiers([]string{"1ABC", "", "2XYZ"})
		Expect(errors.Is(err, entity.ErrInvalidInput)).To(BeTrue())
	})

	It("accepts an empty batch", func() {
		Expect(entity.ValidateIdentifiers(nil)).To(Succeed())
	})

	It("names the file after the identifier", func() {
		Expect(entity.FileName("1ABC")).To(Equal("1ABC.fasta"))
	})
})

var _ = Describe("Summarize", func() {
	It("counts each status and lists the failures in order", func() {
		summary := entity.Summarize([]entity.Result{
			{Identifier: "A", Status: entity.Downloaded},
			{Identifier: "B", Status: entity.TransportFailure},
			{Identifier: "C", Status: entity.PersistenceFailure},
			{Identifier: "D", Status: entity.Downloaded},
		})

		Expect(summary.Total).To(Equal(4))
		Expect(summary.Downloaded).To(Equal(2))
		Expect(summary.TransportFailure).To(Equal(1))
		Expect(summary.PersistenceFailure).To(Equal(1))
		Expect(summary.Failed).To(Equal([]string{"B", "C"}))
	})
})
