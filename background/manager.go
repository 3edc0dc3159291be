package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/um6p-sci/solidarity-api/store"
)

// BackgroundManager runs the notification fan-out workers.
type BackgroundManager struct {
	store store.MongoStore

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		store:      store.NewMongoStore(mongoClient, viper.GetString("mongo.database")),
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// RegisterNotificationTasks wires every fan-out task the API enqueues.
func (m *BackgroundManager) RegisterNotificationTasks() error {
	tasks := map[string]interface{}{
		TaskNotifyOfferReceived:  m.NotifyOfferReceived,
		TaskNotifyOfferAccepted:  m.NotifyOfferAccepted,
		TaskNotifyOfferDeclined:  m.NotifyOfferDeclined,
		TaskNotifyRatingReceived: m.NotifyRatingReceived,
	}

	for name, taskFunc := range tasks {
		if err := m.RegisterTask(name, taskFunc); err != nil {
			return err
		}
	}

	return nil
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("solidarity-worker", 5)
	return m.worker.Launch()
}
