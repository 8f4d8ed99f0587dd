// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-acervo/internal/adapter"
	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/mock"
	"github.com/MKhiriev/go-acervo/internal/session"
	"github.com/MKhiriev/go-acervo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	alice    = models.User{Username: "alice", Name: "Alice"}
	abaporu  = models.Artwork{ID: "1", Name: "Abaporu", Author: "Tarsila"}
	operario = models.Artwork{ID: "2", Name: "Operários", Author: "Tarsila", Owner: "bob"}
)

func personal(records ...models.Artwork) models.CollectionView {
	return models.CollectionView{Context: models.Personal(), Records: records}
}

func group(name string, records ...models.Artwork) models.CollectionView {
	return models.CollectionView{Context: models.InGroup(name), Records: records}
}

// loggedIn returns a workspace with an active session for alice.
func loggedIn(t *testing.T, m *mock.MockServerAdapter) *Workspace {
	t.Helper()
	w := NewWorkspace(m, logger.Nop())
	m.EXPECT().Login(gomock.Any(), models.User{Username: "alice", Password: "secret"}).Return(alice, nil)
	_, err := w.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	return w
}

// ─────────────────────────────────────────────
// Account
// ─────────────────────────────────────────────

func TestWorkspace_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)

	w := loggedIn(t, m)

	assert.Equal(t, alice, w.User())
	require.NotNil(t, w.Session())
	assert.Equal(t, "alice", w.Session().Username())
	assert.True(t, w.Session().View().IsPersonal())
}

func TestWorkspace_Login_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	w := NewWorkspace(m, logger.Nop())

	m.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, adapter.ErrUnauthorized)

	_, err := w.Login(context.Background(), "alice", "wrong")

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Nil(t, w.Session())
}

func TestWorkspace_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	w := NewWorkspace(m, logger.Nop())

	form := models.User{Username: "alice", Name: "alice", Email: "a@b.co", Password: "1234", PasswordConfirm: "1234"}
	m.EXPECT().Register(gomock.Any(), form).Return(alice, nil)

	user, err := w.Register(context.Background(), form)

	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.NotNil(t, w.Session())
}

func TestWorkspace_Logout_DropsStateOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	w := loggedIn(t, m)

	m.EXPECT().Logout(gomock.Any()).Return(errors.New("connection refused"))

	err := w.Logout(context.Background())

	assert.Error(t, err)
	assert.Nil(t, w.Session())
	assert.Empty(t, w.User().Username)
}

func TestWorkspace_RequiresSession(t *testing.T) {
	w := NewWorkspace(mock.NewMockServerAdapter(gomock.NewController(t)), logger.Nop())
	ctx := context.Background()

	assert.ErrorIs(t, w.Refresh(ctx), ErrNotLoggedIn)
	assert.ErrorIs(t, w.SwitchView(ctx, models.InGroup("familia")), ErrNotLoggedIn)
	assert.ErrorIs(t, w.DeleteSelected(ctx), ErrNotLoggedIn)
	_, err := w.SaveNew(ctx, abaporu)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = w.Contexts(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

// ─────────────────────────────────────────────
// Viewing context
// ─────────────────────────────────────────────

func TestWorkspace_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	w := loggedIn(t, m)

	m.EXPECT().Collection(gomock.Any(), models.Personal()).Return(personal(abaporu), nil)

	require.NoError(t, w.Refresh(context.Background()))
	assert.Equal(t, []string{"Abaporu"}, w.Session().Labels())
}

func TestWorkspace_SwitchView(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	w := loggedIn(t, m)

	m.EXPECT().Collection(gomock.Any(), models.InGroup("familia")).Return(group("familia", abaporu, operario), nil)

	require.NoError(t, w.SwitchView(context.Background(), models.InGroup("familia")))
	assert.Equal(t, models.InGroup("familia"), w.Session().View())
	assert.Equal(t, []string{"Abaporu", "Operários (de bob)"}, w.Session().Labels())
}

func TestWorkspace_Refresh_FallsBackWhenGroupIsGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	w := loggedIn(t, m)

	gomock.InOrder(
		m.EXPECT().Collection(gomock.Any(), models.InGroup("familia")).Return(models.CollectionView{}, adapter.ErrForbidden),
		m.EXPECT().Collection(gomock.Any(), models.Personal()).Return(personal(abaporu), nil),
	)

	require.NoError(t, w.SwitchView(context.Background(), models.InGroup("familia")))
	assert.True(t, w.Session().View().IsPersonal())
	assert.Len(t, w.Session().Records(), 1)
}

func TestWorkspace_Refresh_PersonalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	w := loggedIn(t, m)

	m.EXPECT().Collection(gomock.Any(), models.Personal()).Return(models.CollectionView{}, adapter.ErrServiceUnavailable)

	err := w.Refresh(context.Background())

	assert.ErrorIs(t, err, adapter.ErrServiceUnavailable)
	assert.Contains(t, err.Error(), models.PersonalViewLabel)
}

func TestWorkspace_Refresh_IgnoresStaleResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	w := loggedIn(t, m)

	m.EXPECT().Collection(gomock.Any(), models.Personal()).DoAndReturn(
		func(context.Context, models.ViewContext) (models.CollectionView, error) {
			w.Session().SwitchView(models.InGroup("familia"))
			return personal(abaporu), nil
		})

	require.NoError(t, w.Refresh(context.Background()))
	assert.Empty(t, w.Session().Records())
}

func TestWorkspace_Contexts(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	w := loggedIn(t, m)

	m.EXPECT().ListGroups(gomock.Any()).Return([]string{"amigos", "familia"}, nil)

	contexts, err := w.Contexts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.ViewContext{models.Personal(), models.InGroup("amigos"), models.InGroup("familia")}, contexts)
}

// ─────────────────────────────────────────────
// Records
// ─────────────────────────────────────────────

func TestWorkspace_SaveNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	w := loggedIn(t, m)
	ctx := context.Background()

	_, err := w.SaveNew(ctx, abaporu)
	assert.ErrorIs(t, err, ErrWrongMode)

	require.NoError(t, w.Session().BeginAdd())
	form := models.Artwork{ID: "forged", Name: "Abaporu", Author: "Tarsila", Owner: "bob", ImagePath: "x.png"}
	m.EXPECT().AddRecord(gomock.Any(), models.Artwork{Name: "Abaporu", Author: "Tarsila"}).Return(abaporu, nil)
	m.EXPECT().Collection(gomock.Any(), models.Personal()).Return(personal(abaporu), nil)

	added, err := w.SaveNew(ctx, form)

	require.NoError(t, err)
	assert.Equal(t, "1", added.ID)
	assert.Equal(t, session.ModeView, w.Session().Mode())
	selected, ok := w.Session().Selected()
	require.True(t, ok)
	assert.Equal(t, "1", selected.ID)
}

func TestWorkspace_SaveNew_KeepsModeOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	w := loggedIn(t, m)
	require.NoError(t, w.Session().BeginAdd())

	m.EXPECT().AddRecord(gomock.Any(), gomock.Any()).Return(models.Artwork{}, adapter.ErrBadRequest)

	_, err := w.SaveNew(context.Background(), models.Artwork{})

	assert.ErrorIs(t, err, adapter.ErrBadRequest)
	assert.Equal(t, session.ModeAdd, w.Session().Mode())
}

func TestWorkspace_SaveEdit_FromGroupView(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	w := loggedIn(t, m)
	ctx := context.Background()

	mine := models.Artwork{ID: "1", Name: "Abaporu", Author: "Tarsila", Owner: "alice"}
	m.EXPECT().Collection(gomock.Any(), models.InGroup("familia")).Return(group("familia", mine), nil).Times(2)
	require.NoError(t, w.SwitchView(ctx, models.InGroup("familia")))
	require.NoError(t, w.Session().Select("1"))
	_, err := w.Session().BeginEdit()
	require.NoError(t, err)

	edited := mine
	edited.Location = "MALBA"
	want := edited
	want.Owner = ""
	m.EXPECT().UpdateRecord(gomock.Any(), "1", want).Return(want, nil)

	updated, err := w.SaveEdit(ctx, edited)

	require.NoError(t, err)
	assert.Equal(t, "MALBA", updated.Location)
	assert.Equal(t, session.ModeView, w.Session().Mode())
}

func TestWorkspace_SaveEdit_WrongMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	w := loggedIn(t, m)

	_, err := w.SaveEdit(context.Background(), abaporu)

	assert.ErrorIs(t, err, ErrWrongMode)
}

func TestWorkspace_SetPhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	w := loggedIn(t, m)
	ctx := context.Background()

	m.EXPECT().Collection(gomock.Any(), models.Personal()).Return(personal(abaporu), nil).Times(2)
	require.NoError(t, w.Refresh(ctx))
	require.NoError(t, w.Session().Select("1"))
	_, err := w.Session().BeginPhoto()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "abaporu.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\n"), 0o600))

	withImage := abaporu
	withImage.ImagePath = "f00.png"
	m.EXPECT().SetImage(gomock.Any(), "1", "abaporu.png", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, content io.Reader) (models.Artwork, error) {
			b, err := io.ReadAll(content)
			require.NoError(t, err)
			assert.Equal(t, "\x89PNG\r\n\x1a\n", string(b))
			return withImage, nil
		})

	updated, err := w.SetPhoto(ctx, " "+path+" ")

	require.NoError(t, err)
	assert.True(t, updated.HasImage())
	assert.Equal(t, session.ModeView, w.Session().Mode())
}

func TestWorkspace_SetPhoto_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	w := loggedIn(t, m)
	ctx := context.Background()

	m.EXPECT().Collection(gomock.Any(), models.Personal()).Return(personal(abaporu), nil)
	require.NoError(t, w.Refresh(ctx))
	require.NoError(t, w.Session().Select("1"))
	_, err := w.Session().BeginPhoto()
	require.NoError(t, err)

	_, err = w.SetPhoto(ctx, filepath.Join(t.TempDir(), "missing.png"))

	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, session.ModePhoto, w.Session().Mode())
}

func TestWorkspace_DeleteSelected(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	w := loggedIn(t, m)
	ctx := context.Background()

	gomock.InOrder(
		m.EXPECT().Collection(gomock.Any(), models.Personal()).Return(personal(abaporu), nil),
		m.EXPECT().DeleteRecord(gomock.Any(), "1").Return(nil),
		m.EXPECT().Collection(gomock.Any(), models.Personal()).Return(personal(), nil),
	)
	require.NoError(t, w.Refresh(ctx))
	require.NoError(t, w.Session().Select("1"))

	require.NoError(t, w.DeleteSelected(ctx))
	assert.Empty(t, w.Session().Records())
}

func TestWorkspace_DeleteSelected_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	w := loggedIn(t, m)
	ctx := context.Background()

	m.EXPECT().Collection(gomock.Any(), models.InGroup("familia")).Return(group("familia", operario), nil)
	require.NoError(t, w.SwitchView(ctx, models.InGroup("familia")))
	require.NoError(t, w.Session().Select("2"))

	err := w.DeleteSelected(ctx)

	assert.ErrorIs(t, err, session.ErrNotOwner)
}

func TestWorkspace_Image(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	w := NewWorkspace(m, logger.Nop())

	_, err := w.Image(context.Background(), abaporu)
	assert.ErrorIs(t, err, ErrNoImage)

	withImage := abaporu
	withImage.ImagePath = "f00.png"
	m.EXPECT().Image(gomock.Any(), "f00.png").Return([]byte("png"), nil)

	b, err := w.Image(context.Background(), withImage)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), b)
}

func TestDetails(t *testing.T) {
	got := Details(operario)

	assert.Contains(t, got, "Nome: Operários (de bob)")
	assert.Contains(t, got, "Autor: Tarsila")
}

// ─────────────────────────────────────────────
// Groups
// ─────────────────────────────────────────────

func TestWorkspace_LeaveGroup_ReturnsToPersonal(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	w := loggedIn(t, m)
	ctx := context.Background()

	gomock.InOrder(
		m.EXPECT().Collection(gomock.Any(), models.InGroup("familia")).Return(group("familia"), nil),
		m.EXPECT().LeaveGroup(gomock.Any(), "familia").Return(nil),
		m.EXPECT().Collection(gomock.Any(), models.Personal()).Return(personal(abaporu), nil),
	)
	require.NoError(t, w.SwitchView(ctx, models.InGroup("familia")))

	require.NoError(t, w.LeaveGroup(ctx, "familia"))
	assert.True(t, w.Session().View().IsPersonal())
}

func TestWorkspace_LeaveGroup_OtherGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	w := loggedIn(t, m)

	m.EXPECT().LeaveGroup(gomock.Any(), "amigos").Return(nil)

	require.NoError(t, w.LeaveGroup(context.Background(), "amigos"))
	assert.True(t, w.Session().View().IsPersonal())
}

func TestWorkspace_GroupPassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	w := NewWorkspace(m, logger.Nop())
	ctx := context.Background()

	m.EXPECT().ListGroups(gomock.Any()).Return([]string{"amigos"}, nil)
	m.EXPECT().CreateGroup(gomock.Any(), "Família Silva").Return(models.Group{Name: "família_silva", Members: []string{"alice"}}, nil)
	m.EXPECT().Members(gomock.Any(), "família_silva").Return([]models.Member{{Username: "alice", Name: "Alice"}}, nil)
	m.EXPECT().Invite(gomock.Any(), "família_silva", "bob").Return(adapter.ErrConflict)
	m.EXPECT().PendingInvites(gomock.Any()).Return([]models.Invite{{Group: "amigos", Username: "alice"}}, nil)
	m.EXPECT().AcceptInvite(gomock.Any(), "amigos").Return(nil)
	m.EXPECT().DeclineInvite(gomock.Any(), "outros").Return(adapter.ErrNotFound)

	groups, err := w.Groups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"amigos"}, groups)

	g, err := w.CreateGroup(ctx, "Família Silva")
	require.NoError(t, err)
	assert.Equal(t, "família_silva", g.Name)

	members, err := w.Members(ctx, g.Name)
	require.NoError(t, err)
	assert.Len(t, members, 1)

	assert.ErrorIs(t, w.Invite(ctx, g.Name, "bob"), adapter.ErrConflict)

	invites, err := w.PendingInvites(ctx)
	require.NoError(t, err)
	assert.Equal(t, "amigos", invites[0].Group)

	assert.NoError(t, w.AcceptInvite(ctx, "amigos"))
	assert.ErrorIs(t, w.DeclineInvite(ctx, "outros"), adapter.ErrNotFound)
}
