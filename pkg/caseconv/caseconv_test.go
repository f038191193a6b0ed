package caseconv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/typecms/typecms/pkg/caseconv"
)

func TestKebab(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "blog-post", caseconv.Kebab("blog_post"))
	assert.Equal(t, "post", caseconv.Kebab("post"))
}

func TestTitle(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Alt Text", caseconv.Title("alt_text"))
	assert.Equal(t, "Blog Posts", caseconv.Title("blog-posts"))
	assert.Equal(t, "Post", caseconv.Title("post"))
	assert.Equal(t, "", caseconv.Title(""))
}
