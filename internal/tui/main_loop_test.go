// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-acervo/internal/adapter"
	"github.com/MKhiriev/go-acervo/internal/mock"
	"github.com/MKhiriev/go-acervo/internal/session"
	"github.com/MKhiriev/go-acervo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func personalView(records ...models.Artwork) models.CollectionView {
	return models.CollectionView{Context: models.Personal(), Records: records}
}

func groupView(group string, records ...models.Artwork) models.CollectionView {
	return models.CollectionView{Context: models.InGroup(group), Records: records}
}

// loadedModel returns a main loop model whose initial refresh produced
// collection.
func loadedModel(t *testing.T, collection models.CollectionView) (mainLoopModel, *mock.MockServerAdapter) {
	t.Helper()
	ws, m := newWorkspace(t)
	if !collection.Context.IsPersonal() {
		ws.Session().SwitchView(collection.Context)
	}
	m.EXPECT().Collection(gomock.Any(), collection.Context).Return(collection, nil)

	model := newMainLoopModel(context.Background(), ws, models.AppBuildInfo{})
	model, _ = update(t, model, exec(t, model.Init()))
	require.False(t, model.loading)

	return model, m
}

// ─────────────────────────────────────────────
// List
// ─────────────────────────────────────────────

func TestMainLoop_InitialLoadSelectsFirst(t *testing.T) {
	model, _ := loadedModel(t, personalView(abaporu, models.Artwork{ID: "3", Author: "Anita"}))

	assert.Equal(t, 0, model.session().SelectedIndex())
	view := model.View()
	assert.Contains(t, view, "Acervo: Meu Acervo")
	assert.Contains(t, view, "> Abaporu")
	assert.Contains(t, view, "Sem Nome")
	assert.Contains(t, view, "n: novo")
}

func TestMainLoop_LoadError(t *testing.T) {
	ws, m := newWorkspace(t)
	m.EXPECT().Collection(gomock.Any(), models.Personal()).Return(models.CollectionView{}, adapter.ErrServiceUnavailable)

	model := newMainLoopModel(context.Background(), ws, models.AppBuildInfo{})
	model, _ = update(t, model, exec(t, model.Init()))

	assert.Contains(t, model.View(), "Erro:")
}

func TestMainLoop_Navigation(t *testing.T) {
	model, _ := loadedModel(t, personalView(abaporu, bobs))

	model, _ = update(t, model, press("down"))
	assert.Equal(t, 1, model.session().SelectedIndex())
	model, _ = update(t, model, press("down"))
	assert.Equal(t, 1, model.session().SelectedIndex())
	model, _ = update(t, model, press("up"))
	assert.Equal(t, 0, model.session().SelectedIndex())

	model, _ = update(t, model, press("enter"))
	assert.Equal(t, screenDetail, model.screen)
	assert.Contains(t, model.View(), "Tarsila")

	model, _ = update(t, model, press("esc"))
	assert.Equal(t, screenList, model.screen)
}

func TestMainLoop_QuitAndLogout(t *testing.T) {
	model, _ := loadedModel(t, personalView())

	_, cmd := update(t, model, press("q"))
	assert.True(t, isQuit(cmd))

	model, cmd = update(t, model, press("l"))
	assert.True(t, isQuit(cmd))
	assert.True(t, model.logout)
}

// ─────────────────────────────────────────────
// Records
// ─────────────────────────────────────────────

func TestMainLoop_AddRecord(t *testing.T) {
	model, m := loadedModel(t, personalView())

	model, _ = update(t, model, press("n"))
	require.Equal(t, screenForm, model.screen)
	assert.Equal(t, session.ModeAdd, model.session().Mode())
	assert.Contains(t, model.View(), "NOVO QUADRO")

	model = typeText(t, model, "Abaporu")
	model, _ = update(t, model, press("enter"))
	model = typeText(t, model, "Tarsila")
	model, _ = update(t, model, press("enter"))
	model = typeText(t, model, "11/01/1928")
	model, _ = update(t, model, press("enter"))
	model, _ = update(t, model, press("enter"))
	model, cmd := update(t, model, press("enter"))
	require.True(t, model.loading)

	m.EXPECT().AddRecord(gomock.Any(), models.Artwork{Name: "Abaporu", Author: "Tarsila", EntryDate: "11/01/1928"}).Return(abaporu, nil)
	m.EXPECT().Collection(gomock.Any(), models.Personal()).Return(personalView(abaporu), nil)

	model, _ = update(t, model, exec(t, cmd))

	assert.Equal(t, screenDetail, model.screen)
	assert.Equal(t, session.ModeView, model.session().Mode())
	assert.Contains(t, model.View(), "Quadro salvo: Abaporu")
}

func TestMainLoop_AddRecord_RejectedKeepsForm(t *testing.T) {
	model, m := loadedModel(t, personalView())

	model, _ = update(t, model, press("n"))
	for i := 0; i < 4; i++ {
		model, _ = update(t, model, press("enter"))
	}
	model, cmd := update(t, model, press("enter"))

	m.EXPECT().AddRecord(gomock.Any(), gomock.Any()).Return(models.Artwork{}, adapter.ErrBadRequest)
	model, _ = update(t, model, exec(t, cmd))

	assert.Equal(t, screenForm, model.screen)
	assert.Contains(t, model.View(), "Erro:")

	model, _ = update(t, model, press("esc"))
	assert.Equal(t, screenList, model.screen)
	assert.Equal(t, session.ModeView, model.session().Mode())
}

func TestMainLoop_AddOutsidePersonal(t *testing.T) {
	model, _ := loadedModel(t, groupView("familia", bobs))

	assert.NotContains(t, model.View(), "n: novo")

	model, _ = update(t, model, press("n"))

	assert.Equal(t, screenList, model.screen)
	assert.Contains(t, model.View(), models.PersonalViewLabel)
}

func TestMainLoop_EditRequiresOwnership(t *testing.T) {
	model, _ := loadedModel(t, groupView("familia", bobs))

	model, _ = update(t, model, press("e"))

	assert.Equal(t, screenList, model.screen)
	assert.Contains(t, model.View(), "Apenas o dono")
}

func TestMainLoop_EditRecord(t *testing.T) {
	model, m := loadedModel(t, personalView(abaporu))

	model, _ = update(t, model, press("enter"))
	model, _ = update(t, model, press("e"))
	require.Equal(t, screenForm, model.screen)
	assert.Contains(t, model.View(), "EDITAR QUADRO")
	assert.Equal(t, "Abaporu", model.form.value(fieldName))

	for i := 0; i < 3; i++ {
		model, _ = update(t, model, press("tab"))
	}
	model = typeText(t, model, "MALBA")
	model, _ = update(t, model, press("enter"))
	model, cmd := update(t, model, press("enter"))

	edited := abaporu
	edited.Location = "MALBA"
	m.EXPECT().UpdateRecord(gomock.Any(), "1", edited).Return(edited, nil)
	m.EXPECT().Collection(gomock.Any(), models.Personal()).Return(personalView(edited), nil)

	model, _ = update(t, model, exec(t, cmd))

	assert.Equal(t, screenDetail, model.screen)
	assert.Contains(t, model.View(), "MALBA")
}

func TestMainLoop_PhotoRequiresPath(t *testing.T) {
	model, _ := loadedModel(t, personalView(abaporu))

	model, _ = update(t, model, press("p"))
	require.Equal(t, screenPhoto, model.screen)

	model, cmd := update(t, model, press("enter"))

	assert.Nil(t, cmd)
	assert.Contains(t, model.View(), ".jpeg")
}

func TestMainLoop_DeleteRecord(t *testing.T) {
	model, m := loadedModel(t, personalView(abaporu))

	model, _ = update(t, model, press("d"))
	require.Equal(t, screenConfirmDelete, model.screen)
	assert.Contains(t, model.View(), `Excluir "Abaporu"?`)

	model, _ = update(t, model, press("n"))
	assert.Equal(t, screenList, model.screen)

	model, _ = update(t, model, press("d"))
	model, cmd := update(t, model, press("y"))

	m.EXPECT().DeleteRecord(gomock.Any(), "1").Return(nil)
	m.EXPECT().Collection(gomock.Any(), models.Personal()).Return(personalView(), nil)

	model, _ = update(t, model, exec(t, cmd))

	assert.Equal(t, screenList, model.screen)
	assert.Contains(t, model.View(), "Quadro excluído")
	assert.Contains(t, model.View(), "Nenhum quadro")
}

func TestMainLoop_SaveImageWithoutImage(t *testing.T) {
	model, _ := loadedModel(t, personalView(abaporu))

	model, _ = update(t, model, press("enter"))
	model, cmd := update(t, model, press("o"))
	model, _ = update(t, model, exec(t, cmd))

	assert.Contains(t, model.View(), "não tem imagem")
}

// ─────────────────────────────────────────────
// Contexts, groups and invites
// ─────────────────────────────────────────────

func TestMainLoop_SwitchContext(t *testing.T) {
	model, m := loadedModel(t, personalView(abaporu))

	m.EXPECT().ListGroups(gomock.Any()).Return([]string{"familia"}, nil)
	model, cmd := update(t, model, press("c"))
	require.Equal(t, screenContexts, model.screen)
	model, _ = update(t, model, exec(t, cmd))
	assert.Contains(t, model.View(), "Meu Acervo (atual)")

	model, _ = update(t, model, press("down"))
	model, cmd = update(t, model, press("enter"))
	require.Equal(t, screenList, model.screen)

	m.EXPECT().Collection(gomock.Any(), models.InGroup("familia")).Return(groupView("familia", bobs), nil)
	model, _ = update(t, model, exec(t, cmd))

	assert.Equal(t, models.InGroup("familia"), model.session().View())
	assert.Contains(t, model.View(), "Operários (de bob)")
}

func TestMainLoop_Groups(t *testing.T) {
	model, m := loadedModel(t, personalView())

	m.EXPECT().ListGroups(gomock.Any()).Return([]string{"familia"}, nil)
	model, cmd := update(t, model, press("g"))
	model, _ = update(t, model, exec(t, cmd))
	require.Equal(t, screenGroups, model.screen)
	assert.Contains(t, model.View(), "familia")

	m.EXPECT().Members(gomock.Any(), "familia").Return([]models.Member{{Username: "bob", Name: "Bob"}}, nil)
	model, cmd = update(t, model, press("enter"))
	model, _ = update(t, model, exec(t, cmd))
	require.Equal(t, screenMembers, model.screen)
	assert.Contains(t, model.View(), "Bob")

	model, _ = update(t, model, press("esc"))
	model, _ = update(t, model, press("i"))
	require.Equal(t, screenGroupPrompt, model.screen)
	model = typeText(t, model, "Carol")
	model, cmd = update(t, model, press("enter"))

	m.EXPECT().Invite(gomock.Any(), "familia", "carol").Return(nil)
	m.EXPECT().ListGroups(gomock.Any()).Return([]string{"familia"}, nil)
	model, cmd = update(t, model, exec(t, cmd))
	model, _ = update(t, model, exec(t, cmd))

	assert.Equal(t, screenGroups, model.screen)
	assert.Contains(t, model.View(), "Convite enviado para carol")
}

func TestMainLoop_CreateGroupConflict(t *testing.T) {
	model, m := loadedModel(t, personalView())

	m.EXPECT().ListGroups(gomock.Any()).Return(nil, nil)
	model, cmd := update(t, model, press("g"))
	model, _ = update(t, model, exec(t, cmd))
	assert.Contains(t, model.View(), "nenhum grupo")

	model, _ = update(t, model, press("n"))
	model = typeText(t, model, "familia")
	model, cmd = update(t, model, press("enter"))

	m.EXPECT().CreateGroup(gomock.Any(), "familia").Return(models.Group{}, adapter.ErrConflict)
	model, cmd = update(t, model, exec(t, cmd))

	assert.Nil(t, cmd)
	assert.Equal(t, screenGroupPrompt, model.screen)
	assert.Contains(t, model.View(), "Erro:")
}

func TestMainLoop_Invites(t *testing.T) {
	model, m := loadedModel(t, personalView())

	model, _ = update(t, model, pendingInvitesMsg{invites: []models.Invite{{Group: "familia", Username: "alice"}}})
	assert.Contains(t, model.View(), "Convites pendentes: 1")

	m.EXPECT().PendingInvites(gomock.Any()).Return([]models.Invite{{Group: "familia", Username: "alice"}}, nil)
	model, cmd := update(t, model, press("i"))
	model, _ = update(t, model, exec(t, cmd))
	require.Equal(t, screenInvites, model.screen)
	assert.Contains(t, model.View(), "Grupo familia")

	m.EXPECT().AcceptInvite(gomock.Any(), "familia").Return(nil)
	m.EXPECT().PendingInvites(gomock.Any()).Return(nil, nil)
	model, cmd = update(t, model, press("a"))
	model, cmd = update(t, model, exec(t, cmd))
	model, _ = update(t, model, exec(t, cmd))

	assert.Equal(t, 0, model.pendingInvites)
	assert.Contains(t, model.View(), "Você entrou no grupo familia")
	assert.Contains(t, model.View(), "Nenhum convite pendente")
}

func TestMainLoop_About(t *testing.T) {
	model, m := loadedModel(t, personalView())

	m.EXPECT().Version(gomock.Any()).Return(models.AppInfo{Version: "2.0.0", Commit: "def456"}, nil)
	model, cmd := update(t, model, press("v"))
	model, _ = update(t, model, exec(t, cmd))

	assert.Contains(t, model.View(), "2.0.0")
	model, _ = update(t, model, press("esc"))
	assert.Equal(t, screenList, model.screen)
}
