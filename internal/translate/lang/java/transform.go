// Package java implements the Java language transformer: simplified
// pattern replacement without an LLM refinement requirement for the common
// cases (§4.7). Ported from ExtendedJavaTransformer in the original Python
// source, which performs the same trio of service migrations (S3, Lambda,
// DynamoDB) via type-declaration and import substitution rather than a
// full JDT AST rewrite.
package java

import (
	"regexp"

	"github.com/catherinevee/gcpmigrate/internal/translate/lang"
	"github.com/catherinevee/gcpmigrate/pkg/models"
)

// Transformer applies Java's simplified pattern-based rewrite rules.
type Transformer struct{}

// New builds a Java Transformer.
func New() *Transformer { return &Transformer{} }

// Transform applies the rewrite rules registered for recipe.ServiceTag. Java
// gets no variable-rename map: type declarations are rewritten in place by
// regex, not tracked as identifier substitutions the way Python's
// assignment-based client construction is.
func (t *Transformer) Transform(sourceText string, recipe lang.TransformationRecipe) (string, lang.VariableRenameMap) {
	handler, ok := javaHandlers[recipe.ServiceTag]
	if !ok {
		return sourceText, lang.VariableRenameMap{}
	}
	return handler(sourceText), lang.VariableRenameMap{}
}

var javaHandlers = map[models.ServiceTag]func(string) string{
	models.AWSS3:       migrateS3ToGCS,
	models.AWSLambda:   migrateLambdaToCloudFunctions,
	models.AWSDynamoDB: migrateDynamoDBToFirestore,
}

func migrateS3ToGCS(code string) string {
	code = regexp.MustCompile(`import com\.amazonaws\.services\.s3\..*;`).ReplaceAllString(code,
		"import com.google.cloud.storage.Storage;\nimport com.google.cloud.storage.StorageOptions;\nimport com.google.cloud.storage.BlobId;\nimport com.google.cloud.storage.BlobInfo;")
	code = regexp.MustCompile(`AmazonS3\s+(\w+)\s*=`).ReplaceAllString(code, "Storage $1 =")
	code = regexp.MustCompile(`private\s+AmazonS3\s+(\w+);`).ReplaceAllString(code, "private Storage $1;")
	code = regexp.MustCompile(`AmazonS3ClientBuilder\.standard\(\)[^;]*\.build\(\)`).ReplaceAllString(code,
		"StorageOptions.getDefaultInstance().getService()")
	code = regexp.MustCompile(`(\w+)\.putObject\(([^)]+)\)`).ReplaceAllString(code,
		"$1.create(BlobInfo.newBuilder(BlobId.of($2)).build())")
	return code
}

func migrateLambdaToCloudFunctions(code string) string {
	code = regexp.MustCompile(`import com\.amazonaws\.services\.lambda\..*;`).ReplaceAllString(code,
		"import com.google.cloud.functions.HttpFunction;\nimport com.google.cloud.functions.HttpRequest;\nimport com.google.cloud.functions.HttpResponse;")
	code = regexp.MustCompile(`implements\s+RequestHandler<[^>]+>`).ReplaceAllString(code, "implements HttpFunction")
	code = regexp.MustCompile(`public\s+([^(]+)\s+handleRequest\s*\(\s*([^,]+)\s+input\s*,\s*Context\s+context\s*\)`).
		ReplaceAllString(code, "@Override\n    public void service(HttpRequest request, HttpResponse response) throws Exception")
	code = regexp.MustCompile(`return\s+Map\.of\("statusCode",\s*(\d+),\s*"body",\s*"([^"]+)"\);`).
		ReplaceAllString(code, `response.setStatusCode($1);`+"\n        "+`response.getWriter().write("$2");`)
	return code
}

func migrateDynamoDBToFirestore(code string) string {
	code = regexp.MustCompile(`import com\.amazonaws\.services\.dynamodbv2\..*;`).ReplaceAllString(code,
		"import com.google.cloud.firestore.Firestore;\nimport com.google.cloud.firestore.FirestoreOptions;\nimport com.google.cloud.firestore.DocumentReference;\nimport com.google.cloud.firestore.WriteBatch;")
	code = regexp.MustCompile(`AmazonDynamoDB\s+(\w+)\s*=`).ReplaceAllString(code, "Firestore $1 =")
	code = regexp.MustCompile(`private\s+AmazonDynamoDB\s+(\w+);`).ReplaceAllString(code, "private Firestore $1;")
	code = regexp.MustCompile(`AmazonDynamoDBClientBuilder\.standard\(\)[^;]*\.build\(\)`).ReplaceAllString(code,
		"FirestoreOptions.getDefaultInstance().getService()")
	code = regexp.MustCompile(`(\w+)\.putItem\(([^)]+)\)`).ReplaceAllString(code,
		"$1.collection(tableName).document().set(item)")
	return code
}
