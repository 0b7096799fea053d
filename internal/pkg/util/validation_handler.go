package util

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// 表单字段名使用 form tag，错误信息才能对应到页面字段
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateForm 校验表单 DTO，返回 字段名 -> 错误信息，校验通过返回 nil
func ValidateForm(form any) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string]string)

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		for _, fe := range vErrs {
			if _, ok := fieldErrors[fe.Field()]; ok {
				continue
			}
			fieldErrors[fe.Field()] = messageFor(fe)
		}
		return fieldErrors
	}

	fieldErrors["__all__"] = "表单数据无效"
	return fieldErrors
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "此字段不能为空"
	case "max":
		return fmt.Sprintf("长度不能超过 %s 个字符", fe.Param())
	case "min":
		return fmt.Sprintf("长度不能少于 %s 个字符", fe.Param())
	case "email":
		return "请输入有效的电子邮件地址"
	case "eqfield":
		return "两次输入的密码不一致"
	default:
		return fmt.Sprintf("字段校验失败，规则 [%s]", fe.Tag())
	}
}
