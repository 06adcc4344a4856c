// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-project-keeper/internal/adapter"
	"github.com/MKhiriev/go-project-keeper/internal/logger"
	"github.com/MKhiriev/go-project-keeper/internal/mock"
	"github.com/MKhiriev/go-project-keeper/internal/store"
	"github.com/MKhiriev/go-project-keeper/models"
)

func newReconciler(records store.RecordStore, remote *memRemote, accounts store.AccountStore, opts ReconcileOptions) ReconcileService {
	if opts.Hostname == nil {
		opts.Hostname = func() (string, error) { return "dev-laptop", nil }
	}
	return NewReconcileService(records, remote, accounts, opts, logger.Nop())
}

func seedLocal(t *testing.T, records store.RecordStore, projects ...models.Project) {
	t.Helper()
	require.NoError(t, records.WriteAll(context.Background(), projects))
}

// ── scenarios ───────────────────────────────────────────────────────────────

func TestReconcile_DemoScenario(t *testing.T) {
	storages := newFileStorages(t)
	ctx := context.Background()
	seedLocal(t, storages.Records, models.Project{Title: "Demo", Desc: "x", CreatedAt: "2024-01-01T00:00:00Z"})

	_, err := NewNormalizer(storages.Records, &seqIDs{}, NewNotifier(nil), logger.Nop()).Normalize(ctx)
	require.NoError(t, err)

	remote := &memRemote{}
	report, err := newReconciler(storages.Records, remote, storages.Accounts, ReconcileOptions{}).Reconcile(ctx)
	require.NoError(t, err)

	require.Len(t, report.Pushed, 1)
	require.Len(t, remote.creates, 1)
	assert.Equal(t, models.Project{
		Title:       "Demo",
		Desc:        "x",
		Author:      "",
		Public:      models.Bool(true),
		CreatedAt:   "2024-01-01T00:00:00Z",
		PreviewText: "x",
	}, remote.creates[0])
	assert.Nil(t, remote.creates[0].PreviewImage)
	assert.Empty(t, remote.creates[0].ID)
}

func TestReconcile_TwinsWithOneAlreadyRemotePushOnlyTheOther(t *testing.T) {
	tests := []struct {
		name   string
		remote models.Project
	}{
		{name: "remote without id", remote: models.Project{Title: "Shared", CreatedAt: "2024-01-01T00:00:00Z"}},
		{name: "remote with id", remote: models.Project{ID: "r9", Title: "Shared", CreatedAt: "2024-01-01T00:00:00Z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storages := newFileStorages(t)
			ctx := context.Background()

			remote := &memRemote{projects: []models.Project{tt.remote}}
			seedLocal(t, storages.Records,
				models.Project{ID: "local-a", Title: "Shared", CreatedAt: "2024-01-01T00:00:00Z", Public: models.Bool(true)},
				models.Project{ID: "local-b", Title: "Shared", CreatedAt: "2024-01-01T00:00:00Z", Public: models.Bool(true)},
			)
			svc := newReconciler(storages.Records, remote, storages.Accounts, ReconcileOptions{})

			report, err := svc.Reconcile(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, report.Skipped)
			require.Len(t, report.Pushed, 1)
			require.Len(t, remote.creates, 1)
			assert.Equal(t, "Shared", remote.creates[0].Title)

			// повторный запуск ничего не отправляет
			report, err = svc.Reconcile(ctx)
			require.NoError(t, err)
			assert.Empty(t, report.Pushed)
			assert.Equal(t, 2, report.Skipped)
			assert.Len(t, remote.projects, 2)
		})
	}
}

func TestReconcile_DifferentTimestampIsNotAMatch(t *testing.T) {
	storages := newFileStorages(t)

	remote := &memRemote{projects: []models.Project{
		{ID: "r1", Title: "Shared", CreatedAt: "2024-01-01T00:00:00Z"},
	}}
	seedLocal(t, storages.Records,
		models.Project{ID: "local-a", Title: "Shared", CreatedAt: "2024-01-01T00:00:00Z"},
		models.Project{ID: "local-b", Title: "Shared", CreatedAt: "2024-02-02T00:00:00Z"},
	)

	report, err := newReconciler(storages.Records, remote, storages.Accounts, ReconcileOptions{}).Reconcile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Skipped)
	require.Len(t, remote.creates, 1)
	assert.Equal(t, "2024-02-02T00:00:00Z", remote.creates[0].CreatedAt)
}

func TestReconcile_LocalTwinsEachGetARemoteCopy(t *testing.T) {
	storages := newFileStorages(t)
	remote := &memRemote{}
	seedLocal(t, storages.Records,
		models.Project{ID: "local-1", Title: "Twin", CreatedAt: "2024-01-01T00:00:00Z"},
		models.Project{ID: "local-2", Title: "Twin", CreatedAt: "2024-01-01T00:00:00Z"},
	)
	svc := newReconciler(storages.Records, remote, storages.Accounts, ReconcileOptions{})

	report, err := svc.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Len(t, report.Pushed, 2)
	assert.Zero(t, report.Skipped)

	report, err = svc.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Empty(t, report.Pushed)
	assert.Equal(t, 2, report.Skipped)
	assert.Len(t, remote.projects, 2)
}

func TestReconcile_IDMatchKeepsCompositeForItsOwnRecord(t *testing.T) {
	storages := newFileStorages(t)
	remote := &memRemote{projects: []models.Project{
		{ID: "r1", Title: "Shared", CreatedAt: "2024-01-01T00:00:00Z"},
	}}
	// local-x стоит раньше, но r1 уже сопоставлен по id
	seedLocal(t, storages.Records,
		models.Project{ID: "local-x", Title: "Shared", CreatedAt: "2024-01-01T00:00:00Z"},
		models.Project{ID: "r1", Title: "Shared", CreatedAt: "2024-01-01T00:00:00Z"},
	)

	report, err := newReconciler(storages.Records, remote, storages.Accounts, ReconcileOptions{}).Reconcile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Skipped)
	require.Len(t, remote.creates, 1)
	assert.Len(t, remote.projects, 2)
}

func TestReconcile_DuplicateLocalIDPushedOnce(t *testing.T) {
	storages := newFileStorages(t)
	remote := &memRemote{}
	seedLocal(t, storages.Records,
		models.Project{ID: "local-1", Title: "copy"},
		models.Project{ID: "local-1", Title: "copy"},
	)

	report, err := newReconciler(storages.Records, remote, storages.Accounts, ReconcileOptions{}).Reconcile(context.Background())
	require.NoError(t, err)

	assert.Len(t, report.Pushed, 1)
	assert.Equal(t, 1, report.Skipped)
}

func TestReconcile_IdempotentAcrossRuns(t *testing.T) {
	storages := newFileStorages(t)
	remote := &memRemote{projects: []models.Project{{ID: "r1", Title: "already", CreatedAt: "2023-01-01T00:00:00Z"}}}
	seedLocal(t, storages.Records,
		models.Project{ID: "local-1", Title: "a", CreatedAt: "2024-01-01T00:00:00Z"},
		models.Project{ID: "local-2", Title: "b", CreatedAt: "2024-01-02T00:00:00Z"},
		models.Project{ID: "r1", Title: "already"},
	)
	before := readLocal(t, storages.Records)

	svc := newReconciler(storages.Records, remote, storages.Accounts, ReconcileOptions{})

	first, err := svc.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Len(t, first.Pushed, 2)
	assert.Equal(t, 1, first.Skipped)

	second, err := svc.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Empty(t, second.Pushed)
	assert.Equal(t, 3, second.Skipped)

	assert.Len(t, remote.projects, 3)
	// локальные записи не меняются
	assert.Equal(t, before, readLocal(t, storages.Records))
}

// ── payload ─────────────────────────────────────────────────────────────────

func TestReconcile_PayloadForcesPublicAndStripsImage(t *testing.T) {
	storages := newFileStorages(t)
	remote := &memRemote{}
	longDesc := strings.Repeat("д", 250)
	seedLocal(t, storages.Records, models.Project{
		ID:           "local-1",
		Title:        "private",
		Desc:         longDesc,
		Public:       models.Bool(false),
		PreviewImage: models.String("data:image/png;base64,AAAA"),
		CreatedAt:    "2024-01-01T00:00:00Z",
	})

	_, err := newReconciler(storages.Records, remote, storages.Accounts, ReconcileOptions{}).Reconcile(context.Background())
	require.NoError(t, err)

	require.Len(t, remote.creates, 1)
	payload := remote.creates[0]
	assert.True(t, payload.IsPublic())
	assert.Nil(t, payload.PreviewImage)
	assert.Equal(t, strings.Repeat("д", models.PreviewTextLimit), payload.PreviewText)
	assert.Equal(t, longDesc, payload.Desc)
}

func TestReconcile_LongPreviewTextIsCut(t *testing.T) {
	storages := newFileStorages(t)
	remote := &memRemote{}
	seedLocal(t, storages.Records, models.Project{ID: "local-1", Title: "t", PreviewText: strings.Repeat("p", 500)})

	report, err := newReconciler(storages.Records, remote, storages.Accounts, ReconcileOptions{}).Reconcile(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Pushed, 1)
	assert.Equal(t, strings.Repeat("p", models.PreviewTextLimit), remote.creates[0].PreviewText)
}

func TestReconcile_OversizedRecordStaysLocal(t *testing.T) {
	tests := []struct {
		name string
		p    models.Project
	}{
		{name: "title", p: models.Project{ID: "local-1", Title: strings.Repeat("t", 201)}},
		{name: "desc", p: models.Project{ID: "local-1", Title: "t", Desc: strings.Repeat("d", 20001)}},
		{name: "author", p: models.Project{ID: "local-1", Title: "t", Author: strings.Repeat("a", 101)}},
		{name: "created_at", p: models.Project{ID: "local-1", Title: "t", CreatedAt: "yesterday"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storages := newFileStorages(t)
			remote := &memRemote{}
			seedLocal(t, storages.Records, tt.p, models.Project{ID: "local-2", Title: "fine"})

			report, err := newReconciler(storages.Records, remote, storages.Accounts, ReconcileOptions{}).Reconcile(context.Background())
			require.NoError(t, err)

			assert.Equal(t, []string{"local-1"}, report.Failed)
			require.Len(t, remote.creates, 1)
			assert.Equal(t, "fine", remote.creates[0].Title)
		})
	}
}

func TestReconcile_ExistingPreviewTextKept(t *testing.T) {
	storages := newFileStorages(t)
	remote := &memRemote{}
	seedLocal(t, storages.Records, models.Project{ID: "local-1", Desc: "long text", PreviewText: "short"})

	_, err := newReconciler(storages.Records, remote, storages.Accounts, ReconcileOptions{}).Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "short", remote.creates[0].PreviewText)
}

func TestReconcile_SkipPrivate(t *testing.T) {
	storages := newFileStorages(t)
	remote := &memRemote{}
	seedLocal(t, storages.Records,
		models.Project{ID: "local-1", Title: "private", Public: models.Bool(false)},
		models.Project{ID: "local-2", Title: "public", Public: models.Bool(true)},
	)

	report, err := newReconciler(storages.Records, remote, storages.Accounts, ReconcileOptions{SkipPrivate: true}).Reconcile(context.Background())
	require.NoError(t, err)

	require.Len(t, remote.creates, 1)
	assert.Equal(t, "public", remote.creates[0].Title)
	assert.Equal(t, 1, report.Skipped)
}

// ── default author ──────────────────────────────────────────────────────────

func TestReconcile_DefaultAuthor(t *testing.T) {
	tests := []struct {
		name     string
		opts     ReconcileOptions
		signedIn string
		local    string
		want     string
	}{
		{
			name: "deployment host",
			opts: ReconcileOptions{
				DeploymentHost:   "gallery-host",
				DeploymentAuthor: "Studio",
				Hostname:         func() (string, error) { return "Gallery-Host", nil },
			},
			signedIn: "alice",
			want:     "Studio",
		},
		{
			name: "other host uses signed-in user",
			opts: ReconcileOptions{
				DeploymentHost:   "gallery-host",
				DeploymentAuthor: "Studio",
			},
			signedIn: "alice",
			want:     "alice",
		},
		{
			name: "hostname error uses signed-in user",
			opts: ReconcileOptions{
				DeploymentHost:   "gallery-host",
				DeploymentAuthor: "Studio",
				Hostname:         func() (string, error) { return "", errors.New("no hostname") },
			},
			signedIn: "bob",
			want:     "bob",
		},
		{
			name: "nobody signed in",
			want: "",
		},
		{
			name:     "record author wins",
			signedIn: "alice",
			local:    "carol",
			want:     "carol",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storages := newFileStorages(t)
			ctx := context.Background()
			if tt.signedIn != "" {
				require.NoError(t, storages.Accounts.SaveSession(ctx, models.Session{Username: tt.signedIn}))
			}
			seedLocal(t, storages.Records, models.Project{ID: "local-1", Title: "t", Author: tt.local})

			remote := &memRemote{}
			_, err := newReconciler(storages.Records, remote, storages.Accounts, tt.opts).Reconcile(ctx)
			require.NoError(t, err)

			require.Len(t, remote.creates, 1)
			assert.Equal(t, tt.want, remote.creates[0].Author)
		})
	}
}

// ── failures ────────────────────────────────────────────────────────────────

func TestReconcile_CreateFailureContinuesAndRetriesNextRun(t *testing.T) {
	storages := newFileStorages(t)
	remote := &memRemote{failOn: map[string]bool{"flaky": true}}
	seedLocal(t, storages.Records,
		models.Project{ID: "local-1", Title: "flaky", CreatedAt: "2024-01-01T00:00:00Z"},
		models.Project{ID: "local-2", Title: "fine", CreatedAt: "2024-01-02T00:00:00Z"},
	)
	svc := newReconciler(storages.Records, remote, storages.Accounts, ReconcileOptions{})

	report, err := svc.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"local-1"}, report.Failed)
	assert.Len(t, report.Pushed, 1)

	remote.failOn = nil
	report, err = svc.Reconcile(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Pushed, 1)
	assert.Equal(t, "flaky", report.Pushed[0].Title)
	assert.Len(t, remote.projects, 2)
}

func TestReconcile_ListFailureAborts(t *testing.T) {
	storages := newFileStorages(t)
	remote := &memRemote{down: true}
	seedLocal(t, storages.Records, models.Project{ID: "local-1", Title: "a"})

	report, err := newReconciler(storages.Records, remote, storages.Accounts, ReconcileOptions{}).Reconcile(context.Background())
	assert.ErrorIs(t, err, adapter.ErrRemoteUnavailable)
	assert.True(t, report.Aborted)
	assert.Empty(t, remote.creates)
}

func TestReconcile_NoRemoteCollection(t *testing.T) {
	storages := newFileStorages(t)

	svc := NewReconcileService(storages.Records, nil, storages.Accounts, ReconcileOptions{}, logger.Nop())
	report, err := svc.Reconcile(context.Background())
	assert.ErrorIs(t, err, adapter.ErrRemoteUnavailable)
	assert.True(t, report.Aborted)
}

func TestReconcile_LocalReadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	records := mock.NewMockRecordStore(ctrl)
	remote := mock.NewMockRemoteCollection(ctrl)
	records.EXPECT().ReadAll(gomock.Any()).Return(nil, store.ErrCorruptedSlot)
	// удалённая коллекция не опрашивается

	svc := NewReconcileService(records, remote, nil, ReconcileOptions{}, logger.Nop())
	report, err := svc.Reconcile(context.Background())
	assert.ErrorIs(t, err, store.ErrCorruptedSlot)
	assert.True(t, report.Aborted)
}
