package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/gearbay/app/models"
	"github.com/shashiranjanraj/gearbay/pkg/store"
)

type fakeOrderStore struct {
	orders map[string]models.Order
	nextID int
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: map[string]models.Order{}}
}

func (f *fakeOrderStore) FindByUIDProduct(_ context.Context, uid, productID string) (models.Order, error) {
	for _, o := range f.orders {
		if o.UID == uid && o.ProductInfo.ID == productID {
			return o, nil
		}
	}
	return models.Order{}, store.ErrNotFound
}

func (f *fakeOrderStore) Insert(_ context.Context, order models.Order) (models.Order, error) {
	f.nextID++
	id := fmt.Sprintf("order-%d", f.nextID)
	f.orders[id] = order
	return order, nil
}

func (f *fakeOrderStore) FindByUID(_ context.Context, uid string) ([]models.Order, error) {
	out := []models.Order{}
	for _, o := range f.orders {
		if o.UID == uid {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) All(_ context.Context) ([]models.Order, error) {
	out := []models.Order{}
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderStore) Get(_ context.Context, id string) (models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return models.Order{}, store.ErrNotFound
	}
	return o, nil
}

func (f *fakeOrderStore) Update(_ context.Context, id string, fields map[string]any) error {
	o, ok := f.orders[id]
	if !ok {
		return store.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "status":
			o.Status = v.(string)
		case "paid":
			o.Paid = v.(bool)
		case "shipped":
			o.Shipped = v.(bool)
		case "transactionId":
			o.TransactionID = v.(string)
		case "address":
			o.Address = v.(string)
		case "phone":
			o.Phone = v.(string)
		}
	}
	f.orders[id] = o
	return nil
}

func (f *fakeOrderStore) Delete(_ context.Context, id string) error {
	if _, ok := f.orders[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.orders, id)
	return nil
}

// put seeds an order under a known id.
func (f *fakeOrderStore) put(id string, order models.Order) {
	f.orders[id] = order
}

type fakePartStore struct {
	parts map[string]models.Part
}

func newFakePartStore() *fakePartStore {
	return &fakePartStore{parts: map[string]models.Part{}}
}

func (f *fakePartStore) List(_ context.Context, _ bool) ([]models.Part, error) {
	out := []models.Part{}
	for _, p := range f.parts {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePartStore) Get(_ context.Context, id string) (models.Part, error) {
	p, ok := f.parts[id]
	if !ok {
		return models.Part{}, store.ErrNotFound
	}
	return p, nil
}

func (f *fakePartStore) FindByEmailTitle(_ context.Context, email, title string) (models.Part, error) {
	for _, p := range f.parts {
		if p.Email == email && p.Title == title {
			return p, nil
		}
	}
	return models.Part{}, store.ErrNotFound
}

func (f *fakePartStore) Insert(_ context.Context, part models.Part) (models.Part, error) {
	part.ID = primitive.NewObjectID()
	f.parts[part.ID.Hex()] = part
	return part, nil
}

func (f *fakePartStore) Update(_ context.Context, id string, fields map[string]any) error {
	p, ok := f.parts[id]
	if !ok {
		return store.ErrNotFound
	}
	if v, ok := fields["price"]; ok {
		p.Price = v.(float64)
	}
	if v, ok := fields["description"]; ok {
		p.Description = v.(string)
	}
	f.parts[id] = p
	return nil
}

func (f *fakePartStore) UpsertStock(_ context.Context, id string, stock int) error {
	p := f.parts[id]
	p.Stock = stock
	f.parts[id] = p
	return nil
}

func (f *fakePartStore) Delete(_ context.Context, id string) error {
	if _, ok := f.parts[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.parts, id)
	return nil
}

// put seeds a part with a fresh record id and returns its hex id.
func (f *fakePartStore) put(part models.Part) string {
	part.ID = primitive.NewObjectID()
	id := part.ID.Hex()
	f.parts[id] = part
	return id
}

type fakeUserStore struct {
	users map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) Upsert(_ context.Context, user models.User) (models.User, error) {
	if existing, ok := f.users[user.Email]; ok {
		existing.Name = user.Name
		existing.Phone = user.Phone
		existing.Address = user.Address
		f.users[user.Email] = existing
		return existing, nil
	}
	user.UID = fmt.Sprintf("uid-%d", len(f.users)+1)
	user.Role = models.RoleCustomer
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeUserStore) SetRole(_ context.Context, email, role string) error {
	u, ok := f.users[email]
	if !ok {
		return store.ErrNotFound
	}
	u.Role = role
	f.users[email] = u
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, email string) error {
	if _, ok := f.users[email]; !ok {
		return store.ErrNotFound
	}
	delete(f.users, email)
	return nil
}

type fakePaymentStore struct {
	payments  []models.Payment
	insertErr error
}

func (f *fakePaymentStore) Insert(_ context.Context, payment models.Payment) (models.Payment, error) {
	if f.insertErr != nil {
		return models.Payment{}, f.insertErr
	}
	f.payments = append(f.payments, payment)
	return payment, nil
}

func (f *fakePaymentStore) FindByUID(_ context.Context, uid string) ([]models.Payment, error) {
	out := []models.Payment{}
	for _, p := range f.payments {
		if p.UID == uid {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeTx runs the function directly; it records whether the function
// returned an error so tests can assert rollback behavior.
type fakeTx struct {
	calls  int
	failed bool
}

func (f *fakeTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if err := fn(ctx); err != nil {
		f.failed = true
		return err
	}
	return nil
}

type fakeIntentCreator struct {
	amount   int64
	currency string
	err      error
}

func (f *fakeIntentCreator) CreateIntent(_ context.Context, amountMinor int64, currency string) (string, error) {
	f.amount = amountMinor
	f.currency = currency
	if f.err != nil {
		return "", f.err
	}
	return "secret_test", nil
}
