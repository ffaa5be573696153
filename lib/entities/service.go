package entities

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/satelliteqe/robotest/lib/api"
	"github.com/satelliteqe/robotest/lib/constants"
	"github.com/satelliteqe/robotest/lib/faux"
	"github.com/satelliteqe/robotest/lib/orm"

	"github.com/gravitational/trace"
	"github.com/kr/pretty"
	log "github.com/sirupsen/logrus"
)

// Service creates, reads, updates, deletes and searches entities on the server
type Service struct {
	// Client is the API client
	Client *api.Client
	// Generator provides values for fields filled in by CreateMissing
	Generator *faux.Generator
	// FieldLogger specifies the log sink
	log.FieldLogger
}

// NewService returns a service issuing requests with client
func NewService(client *api.Client, gen *faux.Generator) *Service {
	if gen == nil {
		gen = faux.Default()
	}
	return &Service{
		Client:      client,
		Generator:   gen,
		FieldLogger: log.WithField(trace.Component, "entities"),
	}
}

// WithCredentials returns a copy of the service acting as another user
func (s *Service) WithCredentials(username, password string) *Service {
	clone := *s
	clone.Client = s.Client.WithCredentials(username, password)
	return &clone
}

// CreateMissing fills in every required field of e which is not yet set.
// Scalars get factory values and required relations are created on the server,
// sharing the organization of e where the related model has one
func (s *Service) CreateMissing(ctx context.Context, e *orm.Entity) error {
	model := e.Model()
	f, err := NewFactory(model, "", s.Generator)
	if err != nil {
		return trace.Wrap(err)
	}
	values, err := f.Attributes(nil)
	if err != nil {
		return trace.Wrap(err)
	}
	for _, field := range model.Fields() {
		value, ok := values[field.Name]
		if !ok {
			continue
		}
		if _, isSet := e.Get(field.Name); isSet {
			continue
		}
		if field.Kind != orm.OneToOne {
			if err := e.Set(field.Name, value); err != nil {
				return trace.Wrap(err)
			}
			continue
		}
		if !field.Required {
			continue
		}
		relatedModel, err := model.Related(field)
		if err != nil {
			return trace.Wrap(err)
		}
		related := relatedModel.New()
		if org := e.Related("organization"); org != nil {
			if orgField, ok := relatedModel.Field("organization"); ok && orgField.Kind == orm.OneToOne {
				related.MustSet("organization", org)
			}
		}
		created, err := s.Create(ctx, related)
		if err != nil {
			return trace.Wrap(err, "creating %v for %v", relatedModel.Name, model.Name)
		}
		if err := e.Set(field.Name, created); err != nil {
			return trace.Wrap(err)
		}
	}
	if model == LifecycleEnvironment {
		return trace.Wrap(s.setDefaultPrior(ctx, e))
	}
	return nil
}

// setDefaultPrior makes the Library of the organization the prior of the
// environment e unless e has a prior or is the Library itself
func (s *Service) setDefaultPrior(ctx context.Context, e *orm.Entity) error {
	if e.Has("prior") || e.Str("name") == constants.Library {
		return nil
	}
	library, err := s.Library(ctx, e.Related("organization"))
	if err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(e.Set("prior", library))
}

// Library returns the Library environment of the organization
func (s *Service) Library(ctx context.Context, org *orm.Entity) (*orm.Entity, error) {
	if org == nil || org.ID() == 0 {
		return nil, trace.BadParameter("missing organization of the Library environment")
	}
	results, err := s.Client.List(ctx, LifecycleEnvironment.Path, url.Values{
		"organization_id": {strconv.Itoa(org.ID())},
		"search":          {fmt.Sprintf("name=%q", constants.Library)},
	})
	if err != nil {
		return nil, trace.Wrap(err)
	}
	for _, raw := range results {
		env, err := orm.DecodeJSON(LifecycleEnvironment, raw)
		if err != nil {
			return nil, trace.Wrap(err)
		}
		if env.Str("name") == constants.Library {
			return env, nil
		}
	}
	return nil, trace.NotFound("organization %v has no %v environment", org.ID(), constants.Library)
}

// Create fills in missing required fields and creates the entity
func (s *Service) Create(ctx context.Context, e *orm.Entity) (*orm.Entity, error) {
	if err := s.CreateMissing(ctx, e); err != nil {
		return nil, trace.Wrap(err)
	}
	return s.CreateRaw(ctx, e)
}

// CreateRaw creates the entity with exactly the fields set in e
func (s *Service) CreateRaw(ctx context.Context, e *orm.Entity) (*orm.Entity, error) {
	model := e.Model()
	path, err := model.CollectionPath(e)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	payload, err := orm.Payload(e)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	s.logger(model).Debugf("create %v: %# v", path, pretty.Formatter(payload))
	var raw json.RawMessage
	if err := s.Client.Post(ctx, path, payload, &raw); err != nil {
		return nil, trace.Wrap(err)
	}
	return s.decode(e, raw)
}

// Read returns the current server state of e
func (s *Service) Read(ctx context.Context, e *orm.Entity) (*orm.Entity, error) {
	raw, err := s.readRaw(ctx, e)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	return s.decode(e, raw)
}

// ReadJSON returns the server representation of e
func (s *Service) ReadJSON(ctx context.Context, e *orm.Entity) (map[string]interface{}, error) {
	raw, err := s.readRaw(ctx, e)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, trace.BadParameter("%v: invalid JSON: %v", e.Model().Name, err)
	}
	return out, nil
}

func (s *Service) readRaw(ctx context.Context, e *orm.Entity) (json.RawMessage, error) {
	path, err := e.Model().EntityPath(e)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	var raw json.RawMessage
	if err := s.Client.Get(ctx, path, nil, &raw); err != nil {
		return nil, trace.Wrap(err)
	}
	return raw, nil
}

// Update sends the named fields of e, or all set fields if none are named,
// and returns the updated entity
func (s *Service) Update(ctx context.Context, e *orm.Entity, fields ...string) (*orm.Entity, error) {
	model := e.Model()
	path, err := model.EntityPath(e)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	payload, err := orm.Payload(e, fields...)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	s.logger(model).Debugf("update %v: %# v", path, pretty.Formatter(payload))
	var raw json.RawMessage
	if err := s.Client.Put(ctx, path, payload, &raw); err != nil {
		return nil, trace.Wrap(err)
	}
	return s.decode(e, raw)
}

// Delete deletes the entity. If the server answers with a task, Delete
// waits for it to finish
func (s *Service) Delete(ctx context.Context, e *orm.Entity) error {
	path, err := e.Model().EntityPath(e)
	if err != nil {
		return trace.Wrap(err)
	}
	s.logger(e.Model()).Debugf("delete %v", path)
	return trace.Wrap(s.call(ctx, http.MethodDelete, path, nil, nil))
}

// Search lists entities of the model of scope matching the search query.
// scope provides the related entities the collection path refers to
func (s *Service) Search(ctx context.Context, scope *orm.Entity, search string) ([]*orm.Entity, error) {
	path, err := scope.Model().CollectionPath(scope)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	results, err := s.Client.List(ctx, path, query)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	out := make([]*orm.Entity, 0, len(results))
	for _, raw := range results {
		e, err := s.decode(scope, raw)
		if err != nil {
			return nil, trace.Wrap(err)
		}
		out = append(out, e)
	}
	return out, nil
}

// call sends a request and waits for the task the server may answer with.
// A non-task response body is decoded into out unless out is nil
func (s *Service) call(ctx context.Context, method, path string, body, out interface{}) error {
	var raw json.RawMessage
	var err error
	switch method {
	case http.MethodPost:
		err = s.Client.Post(ctx, path, body, &raw)
	case http.MethodPut:
		err = s.Client.Put(ctx, path, body, &raw)
	case http.MethodDelete:
		err = s.Client.Delete(ctx, path, body, &raw)
	default:
		return trace.BadParameter("unsupported method %v", method)
	}
	if err != nil {
		return trace.Wrap(err)
	}
	if api.IsTask(raw) {
		var task api.Task
		if err := json.Unmarshal(raw, &task); err != nil {
			return trace.Wrap(err)
		}
		_, err := s.Client.WaitForTask(ctx, task.ID)
		return trace.Wrap(err)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return trace.BadParameter("%v %v: cannot decode response: %v", method, path, err)
	}
	return nil
}

// decode builds an entity from a response. Path relations the response
// omits are taken from template so the result can be read again
func (s *Service) decode(template *orm.Entity, raw json.RawMessage) (*orm.Entity, error) {
	e, err := orm.DecodeJSON(template.Model(), raw)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	for _, name := range template.Model().PathFields() {
		if e.Has(name) || !template.Has(name) {
			continue
		}
		value, _ := template.Get(name)
		if err := e.Set(name, value); err != nil {
			return nil, trace.Wrap(err)
		}
	}
	return e, nil
}

func (s *Service) logger(model *orm.Model) log.FieldLogger {
	return s.WithField(constants.FieldEntity, model.Name)
}
