/*
 * This file is part of pairing-logic.
 *
 * pairing-logic is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * pairing-logic is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with pairing-logic.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package pkg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nuts-foundation/pairing-logic/pkg/store"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"github.com/thedevsaddam/gojsonq/v2"
)

// CreateResearcherTokens is called when a researcher enters the project key in the notebook. Each approved
// access request of the project gets a fresh researcher token. Requests which cannot be read or are not approved
// are skipped, so the result may be empty. A project without requests is reported as ErrNotFound.
func (pl *PairingLogic) CreateResearcherTokens(ctx context.Context, projectKey string) (ResearcherTokens, error) {
	log := logger().WithFields(logrus.Fields{
		"project": projectKey,
		"batch":   uuid.NewV4().String(),
	})

	projectPath, err := store.Join(ProjectNamespace, projectKey)
	if err != nil {
		return nil, fmt.Errorf("project %q: %w", projectKey, ErrNotFound)
	}

	var project store.Document
	{
		sctx, cancel := pl.storeContext(ctx)
		project, err = pl.Store.Get(sctx, projectPath)
		cancel()
	}
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("project %s: %w", projectKey, ErrNotFound)
	}
	if err != nil {
		return nil, storeUnavailable("load project", err)
	}

	references := requestReferences(project[fieldListOfRequests])
	if len(references) == 0 {
		return nil, fmt.Errorf("project %s has no requests: %w", projectKey, ErrNotFound)
	}

	grantsPath, _ := store.Join(ResearcherGrantsNamespace, projectKey)
	tokens := ResearcherTokens{}

	for i, reference := range references {
		if reference == "" {
			log.Warnf("request %d has no usable path, skipping", i)
			continue
		}

		datasetID, approved, err := pl.approvedDataset(ctx, reference)
		if err != nil {
			log.WithError(err).Warnf("skipping request %s", reference)
			continue
		}
		if !approved {
			log.Debugf("request %s is not approved", reference)
			pl.withdrawGrant(ctx, grantsPath, reference, log)
			continue
		}

		token, err := pl.issueResearcherToken(ctx, datasetID)
		if err != nil {
			log.WithError(err).Errorf("could not issue researcher token for request %s", reference)
			continue
		}
		pl.recordGrant(ctx, grantsPath, reference, token, log)
		tokens[token] = datasetID
	}

	log.Infof("issued %d researcher tokens for %d requests", len(tokens), len(references))
	return tokens, nil
}

// requestReferences reads list_of_requests. Entries are either paths or references with a path field,
// entries of any other shape come back as "" so their position is kept for logging.
func requestReferences(value interface{}) []string {
	list, ok := value.([]interface{})
	if !ok {
		return nil
	}

	references := make([]string, len(list))
	for i, entry := range list {
		switch v := entry.(type) {
		case string:
			references[i] = store.Clean(v)
		case map[string]interface{}:
			if path, ok := v[fieldPath].(string); ok {
				references[i] = store.Clean(path)
			}
		}
	}
	return references
}

// approvedDataset dereferences an access request and returns its dataset when it is approved.
func (pl *PairingLogic) approvedDataset(ctx context.Context, reference string) (string, bool, error) {
	sctx, cancel := pl.storeContext(ctx)
	defer cancel()

	request, err := pl.Store.Get(sctx, reference)
	if err != nil {
		return "", false, err
	}

	raw, err := json.Marshal(request)
	if err != nil {
		return "", false, err
	}
	jq := gojsonq.New().JSONString(string(raw))
	if jq.Error() != nil {
		return "", false, jq.Error()
	}

	if status, _ := jq.Find(pl.Config.StatusField).(string); status != StatusApproved {
		return "", false, nil
	}
	datasetID, _ := jq.Reset().Find(pl.Config.DatasetField).(string)
	if !store.ValidKey(datasetID) {
		return "", false, fmt.Errorf("approved request has no usable %s", pl.Config.DatasetField)
	}
	return datasetID, true, nil
}

func (pl *PairingLogic) issueResearcherToken(ctx context.Context, datasetID string) (string, error) {
	token, err := GenerateToken(pl.Config.TokenLength)
	if err != nil {
		return "", err
	}
	path, _ := store.Join(ResearcherTokenNamespace, token)

	sctx, cancel := pl.storeContext(ctx)
	defer cancel()

	if err := pl.Store.Set(sctx, path, store.Document{fieldDatasetID: datasetID}); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return token, nil
}

// recordGrant makes token the live token of the request and revokes the token it replaces. The swap is atomic,
// overlapping runs each revoke the token they displaced so one token per request stays live.
func (pl *PairingLogic) recordGrant(ctx context.Context, grantsPath, reference, token string, log *logrus.Entry) {
	sctx, cancel := pl.storeContext(ctx)
	defer cancel()

	previous, err := pl.Store.Swap(sctx, grantsPath, store.Document{reference: token})
	if err != nil {
		log.WithError(err).Warnf("could not record researcher grant for request %s, previous token stays valid", reference)
		return
	}
	if old := previous.String(reference); old != "" && old != token {
		pl.revokeResearcherToken(sctx, old, reference, log)
	}
}

// withdrawGrant revokes the live token of a request which is no longer approved.
func (pl *PairingLogic) withdrawGrant(ctx context.Context, grantsPath, reference string, log *logrus.Entry) {
	sctx, cancel := pl.storeContext(ctx)
	defer cancel()

	taken, err := pl.Store.TakeFields(sctx, grantsPath, reference)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.WithError(err).Warnf("could not withdraw researcher grant for request %s", reference)
		}
		return
	}
	if old := taken.String(reference); old != "" {
		pl.revokeResearcherToken(sctx, old, reference, log)
	}
}

func (pl *PairingLogic) revokeResearcherToken(ctx context.Context, token, reference string, log *logrus.Entry) {
	path, err := store.Join(ResearcherTokenNamespace, token)
	if err != nil {
		return
	}
	if err := pl.Store.Delete(ctx, path); err != nil {
		log.WithError(err).Warnf("could not revoke previous researcher token for request %s", reference)
	}
}
