package fetch_test

import (
	"encoding/json"
	"errors"
	"fasta-fetcher-workers/src/application/fasta/entity"
	"fasta-fetcher-workers/src/application/integration_test/dummy"
	"fasta-fetcher-workers/src/application/jobs/fetch"
	"fasta-fetcher-workers/src/application/jobs/fetch/fetchfakes"
	"fasta-fetcher-workers/src/application/publish/publishfakes"

	. "github.com/onsi/gomega"

	. "github.com/onsi/ginkgo"
)

var _ = Describe("Fetch job handler", func() {
	var (
		fakeFetcher *fetchfakes.FakeBatchFetcher
		handler     fetch.JobHandler
		message     []byte
	)

	BeforeEach(func() {
		fakeFetcher = &fetchfakes.FakeBatchFetcher{}
		handler = fetch.NewJobHandler(fakeFetcher)
	})

	It("has the fetch job type", func() {
		Expect(handler.JobType()).To(Equal(fetch.JobType))
	})

	Describe("Well formed message", func() {
		BeforeEach(func() {
			job, err := fetch.CreateJobMessage([]string{"PDB1", "PDB2", "PDB3"})
			Expect(err).NotTo(HaveOccurred())
			Expect(job.Type).To(Equal(fetch.JobType))
			message = job.Body

			fakeFetcher.FetchManyReturns([]entity.Result{
				{Identifier: "PDB1", Status: entity.Downloaded},
				{Identifier: "PDB2", Status: entity.TransportFailure},
				{Identifier: "PDB3", Status: entity.Downloaded},
			}, nil)
		})

		It("fetches the identifiers in order", func() {
			err := handler.HandleMessage(message)
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeFetcher.FetchManyCallCount()).To(Equal(1))
			_, identifiers := fakeFetcher.FetchManyArgsForCall(0)
			Expect(identifiers).To(Equal([]string{"PDB1", "PDB2", "PDB3"}))
		})

		It("doesn't fail the job for individual download failures", func() {
			Expect(handler.HandleMessage(message)).To(Succeed())
		})

		It("returns an error when the fetcher rejects the batch", func() {
			fakeFetcher.FetchManyReturns(nil, entity.ErrInvalidInput)
			Expect(handler.HandleMessage(message)).NotTo(Succeed())
		})
	})

	Describe("Poorly formed message", func() {
		var ExpectInvalidInput = func() {
			err := handler.HandleMessage(message)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, entity.ErrInvalidInput)).To(BeTrue())
			Expect(fakeFetcher.FetchManyCallCount()).To(Equal(0))
		}

		It("rejects identifiers that aren't a list", func() {
			message = []byte(`{"identifiers": "no-list"}`)
			ExpectInvalidInput()
		})

		It("rejects non-string identifiers", func() {
			message = []byte(`{"identifiers": ["PDB1", 123]}`)
			ExpectInvalidInput()
		})

		It("rejects a missing identifiers field", func() {
			message = []byte(`{"ids": ["PDB1"]}`)
			ExpectInvalidInput()
		})

		It("rejects null identifiers", func() {
			message = []byte(`{"identifiers": null}`)
			ExpectInvalidInput()
		})

		It("rejects unsafe identifiers", func() {
			message = []byte(`{"identifiers": ["PDB1", "../../etc/passwd"]}`)
			ExpectInvalidInput()
		})

		It("rejects invalid JSON", func() {
			message = []byte(`{"identifiers": [`)
			Expect(handler.HandleMessage(message)).NotTo(Succeed())
			Expect(fakeFetcher.FetchManyCallCount()).To(Equal(0))
		})
	})

	Describe("CreateJobMessage", func() {
		It("refuses invalid identifiers", func() {
			_, err := fetch.CreateJobMessage([]string{""})
			Expect(errors.Is(err, entity.ErrInvalidInput)).To(BeTrue())
		})
	})
})

var _ = Describe("Enqueue", func() {
	var fakePublisher *publishfakes.FakePublisher

	BeforeEach(func() {
		fakePublisher = &publishfakes.FakePublisher{}
	})

	It("splits identifiers into batches", func() {
		count, err := fetch.Enqueue(fakePublisher, []string{"A1", "B2", "C3", "D4", "E5"}, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(3))
		Expect(fakePublisher.PublishCallCount()).To(Equal(3))

		batches := [][]string{}
		for i := 0; i < fakePublisher.PublishCallCount(); i++ {
			msg := fakePublisher.PublishArgsForCall(i)
			Expect(msg.Type).To(Equal(fetch.JobType))

			params := fetch.JobParams{}
			Expect(json.Unmarshal(msg.Body, &params)).To(Succeed())
			batches = append(batches, params.Identifiers)
		}

		Expect(batches).To(Equal([][]string{{"A1", "B2"}, {"C3", "D4"}, {"E5"}}))
	})

	It("publishes nothing when any identifier is invalid", func() {
		_, err := fetch.Enqueue(fakePublisher, []string{"A1", "bad id"}, 1)
		Expect(errors.Is(err, entity.ErrInvalidInput)).To(BeTrue())
		Expect(fakePublisher.PublishCallCount()).To(Equal(0))
	})

	It("rejects a non-positive batch size", func() {
		_, err := fetch.Enqueue(fakePublisher, []string{"A1"}, 0)
		Expect(err).To(HaveOccurred())
	})

	It("stops at the first publish failure", func() {
		fakePublisher.PublishReturnsOnCall(1, dummy.NetworkFailure)

		count, err := fetch.Enqueue(fakePublisher, []string{"A1", "B2", "C3"}, 1)
		Expect(errors.Is(err, dummy.NetworkFailure)).To(BeTrue())
		Expect(count).To(Equal(1))
		Expect(fakePublisher.PublishCallCount()).To(Equal(2))
	})
})
