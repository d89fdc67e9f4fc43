package models

import "time"

const (
	PageCollection       = "Page"
	PageLayoutCollection = "PageLayout"
	BlogPostCollection   = "BlogPost"
	NewsItemCollection   = "NewsItem"
	PictureCollection    = "Picture"
	DownloadCollection   = "Download"
	AdminMenuCollection  = "AdminSiteMap"
)

type Page struct {
	ID               string `bson:"_id,omitempty"`
	SystemName       string `bson:"systemName"`
	Title            string `bson:"title"`
	Body             string `bson:"body"`
	PageLayoutId     string `bson:"pageLayoutId"`
	IncludeInSitemap bool   `bson:"includeInSitemap"`
	IncludeInMenu    bool   `bson:"includeInMenu"`
	Published        bool   `bson:"published"`
	DisplayOrder     int    `bson:"displayOrder"`
	SeName           string `bson:"seName"`
}

type BlogPost struct {
	ID            string    `bson:"_id,omitempty"`
	Title         string    `bson:"title"`
	Body          string    `bson:"body"`
	BodyOverview  string    `bson:"bodyOverview"`
	AllowComments bool      `bson:"allowComments"`
	Tags          []string  `bson:"tags"`
	SeName        string    `bson:"seName"`
	CreatedOnUtc  time.Time `bson:"createdOnUtc"`
}

type NewsItem struct {
	ID           string    `bson:"_id,omitempty"`
	Title        string    `bson:"title"`
	Short        string    `bson:"short"`
	Full         string    `bson:"full"`
	Published    bool      `bson:"published"`
	SeName       string    `bson:"seName"`
	CreatedOnUtc time.Time `bson:"createdOnUtc"`
}

type Picture struct {
	ID            string `bson:"_id,omitempty"`
	PictureBinary []byte `bson:"pictureBinary"`
	MimeType      string `bson:"mimeType"`
	SeoFilename   string `bson:"seoFilename"`
	ObjectName    string `bson:"objectName"`
	Reference     string `bson:"reference"`
	ObjectId      string `bson:"objectId"`
}

type Download struct {
	ID             string `bson:"_id,omitempty"`
	DownloadGuid   string `bson:"downloadGuid"`
	UseDownloadUrl bool   `bson:"useDownloadUrl"`
	DownloadUrl    string `bson:"downloadUrl"`
	DownloadBinary []byte `bson:"downloadBinary"`
	ContentType    string `bson:"contentType"`
	Filename       string `bson:"filename"`
	Extension      string `bson:"extension"`
}

// AdminMenuItem is one node of the admin sitemap. Children are embedded;
// the whole tree is a handful of documents at the top level.
type AdminMenuItem struct {
	ID              string          `bson:"_id,omitempty"`
	SystemName      string          `bson:"systemName"`
	ResourceName    string          `bson:"resourceName"`
	PermissionNames []string        `bson:"permissionNames"`
	Url             string          `bson:"url"`
	IconClass       string          `bson:"iconClass"`
	DisplayOrder    int             `bson:"displayOrder"`
	ChildNodes      []AdminMenuItem `bson:"childNodes"`
}
