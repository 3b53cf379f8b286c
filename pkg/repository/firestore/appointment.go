package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/kairos/pkg/domain/model"
	"github.com/secmon-lab/kairos/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CollectionAppointments is the base name of the appointment collection
const CollectionAppointments = "appointments"

// appointmentDoc is the Firestore document representation of model.Appointment.
// StoredAt is the insert time and only orders lookups; CreatedAt is the
// client-facing creation time decided before the insert.
type appointmentDoc struct {
	ID        string    `firestore:"ID"`
	UserID    string    `firestore:"UserID"`
	Date      time.Time `firestore:"Date"`
	Time      string    `firestore:"Time"`
	Type      string    `firestore:"Type"`
	Status    string    `firestore:"Status"`
	CreatedAt time.Time `firestore:"CreatedAt"`
	StoredAt  time.Time `firestore:"StoredAt"`
}

func toAppointmentDoc(a *model.Appointment) *appointmentDoc {
	return &appointmentDoc{
		ID:        string(a.ID),
		UserID:    a.UserID,
		Date:      a.Date,
		Time:      a.Time,
		Type:      a.Type,
		Status:    a.Status.String(),
		CreatedAt: a.CreatedAt,
	}
}

func fromAppointmentDoc(d *appointmentDoc) *model.Appointment {
	return &model.Appointment{
		ID:        model.AppointmentID(d.ID),
		UserID:    d.UserID,
		Date:      d.Date,
		Time:      d.Time,
		Type:      d.Type,
		Status:    types.AppointmentStatus(d.Status),
		CreatedAt: d.CreatedAt,
	}
}

type appointmentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAppointmentRepository(client *firestore.Client) *appointmentRepository {
	return &appointmentRepository{client: client}
}

func (r *appointmentRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(CollectionName(r.collectionPrefix, CollectionAppointments))
}

func (r *appointmentRepository) Create(ctx context.Context, appt *model.Appointment) (*model.Appointment, error) {
	if appt.UserID == "" {
		return nil, goerr.New("userId is required to store appointment")
	}

	created := *appt
	created.ID = model.NewAppointmentID()
	created.Status = created.Status.Normalize()

	doc := toAppointmentDoc(&created)
	doc.StoredAt = time.Now().UTC()

	if _, err := r.collection().Doc(doc.ID).Create(ctx, doc); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.Wrap(model.ErrDuplicateID, "appointment ID already exists",
				goerr.V("id", doc.ID), goerr.V("cause", err.Error()))
		}
		return nil, goerr.Wrap(err, "failed to insert appointment",
			goerr.V("id", doc.ID),
			goerr.V("user_id", doc.UserID))
	}

	return &created, nil
}

func (r *appointmentRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*model.Appointment, error) {
	query := r.collection().
		Where("UserID", "==", userID).
		OrderBy("StoredAt", firestore.Asc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	appointments := make([]*model.Appointment, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate appointments", goerr.V("user_id", userID))
		}

		var d appointmentDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal appointment", goerr.V("doc_id", doc.Ref.ID))
		}

		appointments = append(appointments, fromAppointmentDoc(&d))
	}

	return appointments, nil
}
