package repositorygen

import (
	"context"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrazmi/artisan/app/generators/scaffold"
	"github.com/jrazmi/artisan/app/generators/stubs"
	"github.com/jrazmi/artisan/sdk/logger"
)

func newTestGenerator(t *testing.T) (*Generator, billy.Filesystem) {
	t.Helper()
	fsys := memfs.New()
	cfg := scaffold.DefaultConfig()
	cfg.ModulePath = "example.com/blog"
	log := logger.NewDiscard()
	return New(log, scaffold.New(log, fsys, stubs.NewStore(nil), cfg)), fsys
}

func readFile(t *testing.T, fsys billy.Filesystem, p string) string {
	t.Helper()
	data, err := util.ReadFile(fsys, p)
	require.NoError(t, err)
	return string(data)
}

func TestExecutePlain(t *testing.T) {
	g, fsys := newTestGenerator(t)

	res, err := g.Execute(context.Background(), Request{Name: "Post", Model: DefaultModel})
	require.NoError(t, err)
	assert.Equal(t, "Repository [Post] created successfully.", res.Message)
	assert.Equal(t, "app/infrastructures/repositories/post.go", res.Path)

	got := readFile(t, fsys, res.Path)
	want := stubs.RenderString(mustStub(t, stubs.RepositoryPlain), stubs.Vars{
		{Key: "NAMESPACE", Value: "app/infrastructures/repositories"},
		{Key: "PACKAGE", Value: "repositories"},
		{Key: "CLASS_NAME", Value: "Post"},
		{Key: "MODULE", Value: "example.com/blog"},
	})
	assert.Equal(t, want, got)
	assert.Contains(t, got, "package repositories")
	assert.Contains(t, got, "type PostRepository struct")
	assert.NotContains(t, got, "$")
}

func TestExecuteNested(t *testing.T) {
	g, fsys := newTestGenerator(t)

	res, err := g.Execute(context.Background(), Request{Name: "Admin/Posts"})
	require.NoError(t, err)
	assert.Equal(t, "app/infrastructures/repositories/Admin/post.go", res.Path)

	got := readFile(t, fsys, res.Path)
	assert.Contains(t, got, "into app/infrastructures/repositories/Admin.")
	assert.Contains(t, got, "package admin")
}

func TestExecuteMissingModel(t *testing.T) {
	g, fsys := newTestGenerator(t)

	res, err := g.Execute(context.Background(), Request{Name: "Post", Model: "NonExistentModel"})
	require.ErrorIs(t, err, scaffold.ErrPrerequisiteMissing)
	assert.Equal(t, scaffold.StatusModelMissing, res.Status)
	assert.Equal(t, "Model [NonExistentModel] not exist.", res.Message)

	_, err = fsys.Stat("app/infrastructures/repositories/post.go")
	assert.Error(t, err, "nothing may be written")
	_, err = fsys.Stat("app/infrastructures/repositories")
	assert.Error(t, err, "no directory either")
}

func TestExecuteBoundModel(t *testing.T) {
	g, fsys := newTestGenerator(t)
	require.NoError(t, util.WriteFile(fsys, "app/models/user.go", []byte("package models\n"), 0o644))

	res, err := g.Execute(context.Background(), Request{Name: "Users", Model: "User"})
	require.NoError(t, err)
	assert.True(t, res.Created())

	got := readFile(t, fsys, "app/infrastructures/repositories/user.go")
	assert.Contains(t, got, `"example.com/blog/app/models"`)
	assert.Contains(t, got, "*repositories.Repository[models.User]")
	assert.Contains(t, got, "func NewUserRepository(")
	assert.NotContains(t, got, "$")
}

func TestExecuteExisting(t *testing.T) {
	g, fsys := newTestGenerator(t)
	require.NoError(t, util.WriteFile(fsys, "app/infrastructures/repositories/post.go", []byte("custom"), 0o644))

	res, err := g.Execute(context.Background(), Request{Name: "Post"})
	require.ErrorIs(t, err, scaffold.ErrAlreadyExists)
	assert.Equal(t, "Repository [Post] already exist.", res.Message)
	assert.Equal(t, "custom", readFile(t, fsys, "app/infrastructures/repositories/post.go"))
}

func TestExecuteEmptyName(t *testing.T) {
	g, _ := newTestGenerator(t)

	_, err := g.Execute(context.Background(), Request{Name: ""})
	require.ErrorIs(t, err, scaffold.ErrInvalidName)
}

func TestRequestBound(t *testing.T) {
	assert.False(t, Request{}.Bound())
	assert.False(t, Request{Model: DefaultModel}.Bound())
	assert.True(t, Request{Model: "User"}.Bound())
}

func mustStub(t *testing.T, name string) string {
	t.Helper()
	s, err := stubs.NewStore(nil).Read(name)
	require.NoError(t, err)
	return s
}
