package entities

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/satelliteqe/robotest/lib/defaults"
	"github.com/satelliteqe/robotest/lib/orm"
	"github.com/satelliteqe/robotest/lib/wait"

	"github.com/gravitational/trace"
)

// AddProducts attaches products to the sync plan
func (s *Service) AddProducts(ctx context.Context, plan *orm.Entity, products ...*orm.Entity) error {
	return trace.Wrap(s.syncPlanProducts(ctx, plan, "add_products", products))
}

// RemoveProducts detaches products from the sync plan
func (s *Service) RemoveProducts(ctx context.Context, plan *orm.Entity, products ...*orm.Entity) error {
	return trace.Wrap(s.syncPlanProducts(ctx, plan, "remove_products", products))
}

func (s *Service) syncPlanProducts(ctx context.Context, plan *orm.Entity, action string, products []*orm.Entity) error {
	if err := expectModel(plan, SyncPlan); err != nil {
		return trace.Wrap(err)
	}
	path, err := SyncPlan.EntityPath(plan)
	if err != nil {
		return trace.Wrap(err)
	}
	ids, err := entityIDs(products)
	if err != nil {
		return trace.Wrap(err)
	}
	body := map[string]interface{}{"product_ids": ids}
	return trace.Wrap(s.call(ctx, http.MethodPut, path+"/"+action, body, nil))
}

// SyncProduct synchronizes all repositories of the product and waits for the sync
func (s *Service) SyncProduct(ctx context.Context, product *orm.Entity) error {
	if err := expectModel(product, Product); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(s.action(ctx, product, "sync", nil))
}

// SyncRepository synchronizes the repository and waits for the sync
func (s *Service) SyncRepository(ctx context.Context, repo *orm.Entity) error {
	if err := expectModel(repo, Repository); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(s.action(ctx, repo, "sync", nil))
}

// Publish publishes a new version of the content view into Library and
// returns the new version
func (s *Service) Publish(ctx context.Context, view *orm.Entity) (*orm.Entity, error) {
	if err := expectModel(view, ContentView); err != nil {
		return nil, trace.Wrap(err)
	}
	if err := s.action(ctx, view, "publish", map[string]interface{}{"id": view.ID()}); err != nil {
		return nil, trace.Wrap(err)
	}
	versions, err := s.Versions(ctx, view)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	if len(versions) == 0 {
		return nil, trace.NotFound("content view %v has no versions after publish", view.ID())
	}
	return versions[len(versions)-1], nil
}

// Versions returns the versions of the content view ordered by id
func (s *Service) Versions(ctx context.Context, view *orm.Entity) ([]*orm.Entity, error) {
	current, err := s.Read(ctx, view)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	var versions []*orm.Entity
	for _, ref := range current.RelatedList("versions") {
		version, err := s.Read(ctx, ref)
		if err != nil {
			return nil, trace.Wrap(err)
		}
		versions = append(versions, version)
	}
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].ID() < versions[j].ID()
	})
	return versions, nil
}

// Promote promotes the content view version into the environments. With force
// an environment need not follow one already holding the version
func (s *Service) Promote(ctx context.Context, version *orm.Entity, envIDs []int, force bool) error {
	if err := expectModel(version, ContentViewVersion); err != nil {
		return trace.Wrap(err)
	}
	if len(envIDs) == 0 {
		return trace.BadParameter("missing environments to promote %v to", version.ID())
	}
	body := map[string]interface{}{
		"id":              version.ID(),
		"environment_ids": envIDs,
		"force":           force,
	}
	return trace.Wrap(s.action(ctx, version, "promote", body))
}

// RemoveFromEnvironment removes the content view from the environment
func (s *Service) RemoveFromEnvironment(ctx context.Context, view, env *orm.Entity) error {
	if err := expectModel(view, ContentView); err != nil {
		return trace.Wrap(err)
	}
	if err := expectModel(env, LifecycleEnvironment); err != nil {
		return trace.Wrap(err)
	}
	path, err := ContentView.EntityPath(view)
	if err != nil {
		return trace.Wrap(err)
	}
	if env.ID() == 0 {
		return trace.BadParameter("environment has no id")
	}
	return trace.Wrap(s.call(ctx, http.MethodDelete, fmt.Sprintf("%v/environments/%v", path, env.ID()), nil, nil))
}

// DeleteVersion deletes the content view version. The version must not be
// in any environment
func (s *Service) DeleteVersion(ctx context.Context, version *orm.Entity) error {
	if err := expectModel(version, ContentViewVersion); err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(s.Delete(ctx, version))
}

// AvailablePermissions lists the permissions defined for a filter resource type
func (s *Service) AvailablePermissions(ctx context.Context, resourceType string) ([]*orm.Entity, error) {
	if resourceType == "" {
		return nil, trace.BadParameter("missing resource type")
	}
	results, err := s.Client.List(ctx, Permission.Path, url.Values{
		"search": {fmt.Sprintf("resource_type=%q", resourceType)},
	})
	if err != nil {
		return nil, trace.Wrap(err)
	}
	out := make([]*orm.Entity, 0, len(results))
	for _, raw := range results {
		permission, err := orm.DecodeJSON(Permission, raw)
		if err != nil {
			return nil, trace.Wrap(err)
		}
		if permission.Str("resource_type") == resourceType {
			out = append(out, permission)
		}
	}
	return out, nil
}

// ContentCounts returns the number of units per content type in the repository
func (s *Service) ContentCounts(ctx context.Context, repo *orm.Entity) (map[string]int, error) {
	if err := expectModel(repo, Repository); err != nil {
		return nil, trace.Wrap(err)
	}
	path, err := Repository.EntityPath(repo)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	var response struct {
		ContentCounts map[string]int `json:"content_counts"`
	}
	if err := s.Client.Get(ctx, path, nil, &response); err != nil {
		return nil, trace.Wrap(err)
	}
	if response.ContentCounts == nil {
		response.ContentCounts = make(map[string]int)
	}
	return response.ContentCounts, nil
}

// ValidateRepoContent checks the content counts of the repository for the
// content types. After a sync every type must have units, before a sync none.
// Counts are updated asynchronously by the server so they are re-read until
// attempts run out
func (s *Service) ValidateRepoContent(ctx context.Context, repo *orm.Entity, types []string, afterSync bool, attempts int) error {
	if attempts < 1 {
		attempts = defaults.ContentCountAttempts
	}
	r := wait.Retryer{
		Delay:       defaults.ContentCountDelay,
		MaxDelay:    defaults.ContentCountDelay,
		Attempts:    attempts,
		FieldLogger: s.logger(Repository),
	}
	return r.Do(ctx, func() error {
		counts, err := s.ContentCounts(ctx, repo)
		if err != nil {
			if trace.IsNotFound(err) {
				return wait.Abort(err)
			}
			return trace.Wrap(err)
		}
		for _, kind := range types {
			count := counts[kind]
			if afterSync && count == 0 {
				return wait.Continue("repository %v has no %v units yet", repo.ID(), kind)
			}
			if !afterSync && count != 0 {
				return wait.Continue("repository %v has %v %v units before sync", repo.ID(), count, kind)
			}
		}
		return nil
	})
}

// action posts to an entity action like <path>/<id>/sync and waits for the task
func (s *Service) action(ctx context.Context, e *orm.Entity, name string, body interface{}) error {
	path, err := e.Model().EntityPath(e)
	if err != nil {
		return trace.Wrap(err)
	}
	s.logger(e.Model()).Debugf("%v %v", name, path)
	return trace.Wrap(s.call(ctx, http.MethodPost, path+"/"+name, body, nil))
}

func expectModel(e *orm.Entity, model *orm.Model) error {
	if e == nil {
		return trace.BadParameter("missing %v", model.Name)
	}
	if e.Model() != model {
		return trace.BadParameter("expected %v, got %v", model.Name, e.Model().Name)
	}
	return nil
}

func entityIDs(list []*orm.Entity) ([]int, error) {
	ids := make([]int, 0, len(list))
	for _, e := range list {
		if e.ID() == 0 {
			return nil, trace.BadParameter("%v has not been created", e.Model().Name)
		}
		ids = append(ids, e.ID())
	}
	return ids, nil
}
