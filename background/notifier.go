package background

import (
	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"

	"github.com/um6p-sci/solidarity-api/schema"
)

// Notifier enqueues advisory notifications for domain transitions. An
// enqueue failure is the caller's to log and swallow; it must never
// block or roll back the transition.
type Notifier interface {
	NotifyOfferReceived(offer schema.Offer, request schema.Request) error
	NotifyOfferAccepted(offer schema.Offer, request schema.Request, contactEmail string) error
	NotifyOfferDeclined(offer schema.Offer) error
	NotifyRatingReceived(recipientID, requestID string) error
}

// MachineryNotifier hands the fan-out to the background workers through
// the task queue.
type MachineryNotifier struct {
	taskServer *machinery.Server
}

func NewMachineryNotifier(taskServer *machinery.Server) *MachineryNotifier {
	return &MachineryNotifier{
		taskServer: taskServer,
	}
}

func stringArgs(values ...string) []tasks.Arg {
	args := make([]tasks.Arg, 0, len(values))
	for _, v := range values {
		args = append(args, tasks.Arg{
			Type:  "string",
			Value: v,
		})
	}
	return args
}

func (n *MachineryNotifier) NotifyOfferReceived(offer schema.Offer, request schema.Request) error {
	_, err := n.taskServer.SendTask(&tasks.Signature{
		Name: TaskNotifyOfferReceived,
		Args: stringArgs(request.UserID, request.ID, offer.HelperName, request.Category),
	})
	return err
}

func (n *MachineryNotifier) NotifyOfferAccepted(offer schema.Offer, request schema.Request, contactEmail string) error {
	_, err := n.taskServer.SendTask(&tasks.Signature{
		Name: TaskNotifyOfferAccepted,
		Args: stringArgs(offer.HelperID, request.ID, request.Category, request.SpecificDetail, contactEmail),
	})
	return err
}

func (n *MachineryNotifier) NotifyOfferDeclined(offer schema.Offer) error {
	_, err := n.taskServer.SendTask(&tasks.Signature{
		Name: TaskNotifyOfferDeclined,
		Args: stringArgs(offer.HelperID, offer.RequestID),
	})
	return err
}

func (n *MachineryNotifier) NotifyRatingReceived(recipientID, requestID string) error {
	_, err := n.taskServer.SendTask(&tasks.Signature{
		Name: TaskNotifyRatingReceived,
		Args: stringArgs(recipientID, requestID),
	})
	return err
}
