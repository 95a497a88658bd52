package application

import (
	filestore "fasta-fetcher-workers/src/application/cloud_storage/store"
	"fasta-fetcher-workers/src/application/fasta/downloader"
	"fasta-fetcher-workers/src/application/fasta/store"
	"fasta-fetcher-workers/src/application/jobs/fetch"
	"fasta-fetcher-workers/src/application/jobs/job_router"
	"fasta-fetcher-workers/src/application/worker"
	"fasta-fetcher-workers/src/lib/env"
	"net/http"
	"os"
	"strconv"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/json"

	"github.com/streadway/amqp"
)

func ensureOk(err error) {
	if err != nil {
		panic(err)
	}
}

type App struct {
	workers []worker.QueueWorker
	done    chan struct{}
}

func NewApp() App {
	ConfigureLogging(env.Get())

	rabbitURL := env.MustGet("RABBITMQ_URL")
	consumerConn, err := amqp.Dial(rabbitURL)
	ensureOk(err)

	fastaDownloader := newFastaDownloader()
	router, err := job_router.NewJobRouter(fetch.NewJobHandler(fastaDownloader))
	ensureOk(err)

	workers := []worker.QueueWorker{}
	numWorkers := getNumWorkers()
	for i := 0; i < numWorkers; i++ {
		queueWorker, err := worker.NewQueueWorkerFromConnection(consumerConn, QueueName(), router)
		ensureOk(err)
		workers = append(workers, queueWorker)
	}

	return App{
		workers: workers,
		done:    make(chan struct{}, numWorkers),
	}
}

func (a *App) Start() {
	for _, queueWorker := range a.workers {
		go func(worker worker.QueueWorker) {
			defer func() { a.done <- struct{}{} }()

			err := worker.Start()
			if err != nil {
				log.WithError(err).Error("Failed to start worker!")
			}
		}(queueWorker)
	}
}

// Wait blocks until every worker has stopped.
func (a *App) Wait() {
	for range a.workers {
		<-a.done
	}
}

func ConfigureLogging(environment env.Environment) {
	if environment == env.Production {
		log.SetHandler(json.New(os.Stderr))
	} else {
		log.SetHandler(cli.New(os.Stderr))
	}

	if level, err := log.ParseLevel(env.GetOrDefault("LOG_LEVEL", "info")); err == nil {
		log.SetLevel(level)
	}
}

func QueueName() string {
	return env.MustGet("RABBITMQ_QUEUE_NAME")
}

func getNumWorkers() int {
	numWorkersStr := env.MustGet("NUM_WORKERS")
	numWorkers, err := strconv.Atoi(numWorkersStr)
	ensureOk(err)
	return numWorkers
}

func newFastaDownloader() downloader.FastaDownloader {
	opts := []downloader.Option{
		downloader.WithBaseURL(env.GetOrDefault("FASTA_BASE_URL", downloader.DefaultBaseURL)),
	}

	if jsonKey := os.Getenv("GOOGLE_CLOUD_KEY"); jsonKey != "" {
		fileStore, err := filestore.NewGoogleFileStore(jsonKey)
		ensureOk(err)
		opts = append(opts, downloader.WithMirror(fileStore, env.MustGet("GOOGLE_CLOUD_STORAGE_BUCKET_NAME")))
	}

	if env.GetBool("DYNAMODB_RECORD_DOWNLOADS") {
		opts = append(opts, downloader.WithMetadataRecorder(store.NewDynamoDBRecorder(env.Get())))
	}

	httpClient := &http.Client{Timeout: env.GetSeconds("FASTA_HTTP_TIMEOUT_SECONDS", downloader.DefaultTimeout)}

	fastaDownloader, err := downloader.NewFastaDownloader(httpClient, env.MustGet("FASTA_DIR_PATH"), opts...)
	ensureOk(err)

	log.WithField("directory", fastaDownloader.Directory()).Info("FASTA destination directory ready")
	return fastaDownloader
}
